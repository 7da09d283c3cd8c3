package legacy

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Ramsey-B/clover/pkg/coerce"
	"github.com/Ramsey-B/clover/pkg/models"
)

// row is a scanned record keyed by upper-cased column name.
type row map[string]any

func scanRows(rows *sqlx.Rows) ([]row, error) {
	defer rows.Close()

	var out []row
	for rows.Next() {
		raw := map[string]any{}
		if err := rows.MapScan(raw); err != nil {
			return nil, err
		}
		r := make(row, len(raw))
		for k, v := range raw {
			r[strings.ToUpper(k)] = v
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (r row) str(col string) string  { return coerce.AsString(r[col]) }
func (r row) num(col string) int     { return coerce.AsInt(r[col]) }
func (r row) dec(col string) float64 { return coerce.AsFloat(r[col]) }

func toLegacyProject(r row) models.LegacyProject {
	return models.LegacyProject{
		WorkHeaderID: r.num("WORK_HEADER_ID"),
		Name:         r.str("NOMEPROJETO"),
		TotalM2:      r.dec("TOTALM2"),
		DaysPerYear:  r.num("DIASANO"),
		CalcOptions:  r.num("OPCOESCALCULO"),
		Factor:       r.dec("FATOR"),
		Address1:     r.str("END1"),
		Address2:     r.str("END2"),
		Address3:     r.str("END3"),
		Contact:      r.str("CONTATO"),
		Phone:        r.str("TELEFONE"),
		Mobile:       r.str("CELULAR"),
		RegisteredAt: coerce.AsTime(r["DATACAD"]),
		Level:        r.num("NIVEL_PROJETO"),
	}
}

func toLegacyEmployee(r row) models.LegacyEmployee {
	return models.LegacyEmployee{
		WorkHeaderID: r.num("WORK_HEADER_ID"),
		Slot:         r.num("FUNCIONARIO"),
		ShiftStart:   coerce.AsClock(r["HORAENTRA"]),
		ShiftEnd:     coerce.AsClock(r["HORASAI"]),
		Note:         r.str("OBS"),
	}
}

func toLegacyArea(r row) models.LegacyArea {
	return models.LegacyArea{
		AreaID:       r.num("AREA_ID"),
		WorkAreaID:   r.num("WORK_AREA_ID"),
		Name:         r.str("AREA"),
		SizeM2:       r.num("METROS2"),
		Density:      r.str("DENSIDADE"),
		WorkHeaderID: r.num("WORK_HEADER_ID"),
	}
}

func toLegacyTask(r row) models.LegacyTask {
	return models.LegacyTask{
		TaskNumber:    r.num("TAREFA"),
		Description:   r.str("DESCRICAO"),
		Period:        r.str("PERIODO"),
		FrequencyDays: r.num("FREQUENCIA_DIAS"),
		FrequencyName: r.str("FREQUENCIA_NOME"),
		Order:         r.num("ORDEM"),
		SizeM2:        r.num("METROS2"),
		WorkHeaderID:  r.num("WORK_HEADER_ID"),
		WorkAreaID:    r.num("WORK_AREA_ID"),
	}
}
