package legacy

import (
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/clover/pkg/database"
)

const projectParam = "projectId"

func projectQuery(projectID int) (string, []any) {
	sb := database.NewSelectBuilder()
	sb.Select(
		"WORK_HEADER_ID", "NOMEPROJETO", "TOTALM2", "DIASANO", "OPCOESCALCULO", "FATOR",
		"END1", "END2", "END3", "CONTATO", "TELEFONE", "CELULAR", "DATACAD", "NIVEL_PROJETO",
	)
	sb.From(database.NoLock("WORK_HEADER"))
	sb.Where(sb.Equal("WORK_HEADER_ID", database.Named(projectParam, projectID)))
	return sb.Build()
}

func employeesQuery(projectID int) (string, []any) {
	sb := database.NewSelectBuilder()
	sb.Select("WORK_HEADER_ID", "FUNCIONARIO", "HORAENTRA", "HORASAI", "OBS")
	sb.From(database.NoLock("WORK_FUNCIONARIO"))
	sb.Where(sb.Equal("WORK_HEADER_ID", database.Named(projectParam, projectID)))
	sb.OrderBy("FUNCIONARIO")
	return sb.Build()
}

func areasQuery(projectID int) (string, []any) {
	sb := database.NewSelectBuilder()
	sb.Select("AREA_ID", "WORK_AREA_ID", "AREA", "METROS2", "DENSIDADE", "WORK_HEADER_ID")
	sb.From(database.NoLock("WORK_AREA"))
	sb.Where(sb.Equal("WORK_HEADER_ID", database.Named(projectParam, projectID)))
	sb.OrderBy("WORK_AREA_ID")
	return sb.Build()
}

// tasksQuery lists every task of every area of a project. The frequency name
// table is optional, so it is left joined.
func tasksQuery(projectID int) (string, []any) {
	sb := database.NewSelectBuilder()
	sb.Select(
		sb.As("D.TAREFA_NUMERO", "TAREFA"),
		sb.As("D.NOME_TAREFA", "DESCRICAO"),
		"D.PERIODO",
		sb.As("C.FREQUENCIA", "FREQUENCIA_DIAS"),
		sb.As("FREQ.FREQUENCIA", "FREQUENCIA_NOME"),
		"C.ORDEM",
		"B.METROS2",
		"A.WORK_HEADER_ID",
		"B.WORK_AREA_ID",
	)
	sb.From(database.NoLock("WORK_HEADER A"))
	sb.Join(database.NoLock("WORK_AREA B"), "B.WORK_HEADER_ID = A.WORK_HEADER_ID")
	sb.Join(database.NoLock("WORK_TAREFAS C"), "C.WORK_AREA_ID = B.WORK_AREA_ID")
	sb.Join(database.NoLock("WORK_TBL_TAREFAS D"), "D.WORK_TBL_TAREFAS_ID = C.WORK_TBL_TAREFAS_ID")
	sb.JoinWithOption(sqlbuilder.LeftJoin, database.NoLock("WORK_TBL_FREQ FREQ"), "C.FREQUENCIA = FREQ.DIAS")
	sb.Where(sb.Equal("A.WORK_HEADER_ID", database.Named(projectParam, projectID)))
	sb.OrderBy("B.WORK_AREA_ID", "C.ORDEM", "D.TAREFA_NUMERO")
	return sb.Build()
}
