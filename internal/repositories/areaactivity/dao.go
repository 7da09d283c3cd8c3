package areaactivity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ramsey-B/clover/pkg/docstore"
	"github.com/Ramsey-B/clover/pkg/models"
)

const Collection = "areaActivity"

var Indexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "projectId", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetName("idx_projectId_name"),
	},
}

type FrequencyDocument struct {
	Type     string `bson:"type"`
	WeekDays []int  `bson:"weekDays"`
}

type ItemDocument struct {
	ItemID    int                `bson:"itemId"`
	Name      string             `bson:"name"`
	OrderBy   int                `bson:"orderBy"`
	Frequency *FrequencyDocument `bson:"frequency,omitempty"`
}

type AreaActivityDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	QuickTask   bool               `bson:"quickTask"`
	TotalM2     int                `bson:"totalM2"`
	EmployeeID  *string            `bson:"employeeId"`
	HeaderID    string             `bson:"headerId"`
	OrderBy     int                `bson:"orderBy"`
	Frequency   *FrequencyDocument `bson:"frequency"`
	Items       []ItemDocument     `bson:"items"`
	ProjectID   int                `bson:"projectId"`
	CreatedDate time.Time          `bson:"createdDate"`
	UpdateDate  time.Time          `bson:"updateDate"`
}

func fromFrequency(f *models.Frequency) *FrequencyDocument {
	if f == nil {
		return nil
	}
	return &FrequencyDocument{Type: string(f.Type), WeekDays: f.WeekDays}
}

func toFrequency(f *FrequencyDocument) *models.Frequency {
	if f == nil {
		return nil
	}
	return &models.Frequency{Type: models.FrequencyType(f.Type), WeekDays: f.WeekDays}
}

func FromAreaActivity(a models.AreaActivity) (AreaActivityDocument, error) {
	oid, err := docstore.OptionalID(a.ID)
	if err != nil {
		return AreaActivityDocument{}, err
	}

	items := make([]ItemDocument, 0, len(a.Items))
	for _, item := range a.Items {
		items = append(items, ItemDocument{
			ItemID:    item.ItemID,
			Name:      item.Name,
			OrderBy:   item.OrderBy,
			Frequency: fromFrequency(item.Frequency),
		})
	}

	return AreaActivityDocument{
		ID:          oid,
		Name:        a.Name,
		Description: a.Description,
		QuickTask:   a.QuickTask,
		TotalM2:     a.TotalM2,
		EmployeeID:  a.EmployeeID,
		HeaderID:    a.HeaderID,
		OrderBy:     a.OrderBy,
		Frequency:   fromFrequency(a.Frequency),
		Items:       items,
		ProjectID:   a.ProjectID,
		CreatedDate: a.CreatedDate,
		UpdateDate:  a.UpdateDate,
	}, nil
}

func ToAreaActivity(doc AreaActivityDocument) models.AreaActivity {
	items := make([]models.AreaActivityItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, models.AreaActivityItem{
			ItemID:    item.ItemID,
			Name:      item.Name,
			OrderBy:   item.OrderBy,
			Frequency: toFrequency(item.Frequency),
		})
	}

	return models.AreaActivity{
		ID:          docstore.HexID(doc.ID),
		Name:        doc.Name,
		Description: doc.Description,
		QuickTask:   doc.QuickTask,
		TotalM2:     doc.TotalM2,
		EmployeeID:  doc.EmployeeID,
		HeaderID:    doc.HeaderID,
		OrderBy:     doc.OrderBy,
		Frequency:   toFrequency(doc.Frequency),
		Items:       items,
		ProjectID:   doc.ProjectID,
		CreatedDate: doc.CreatedDate,
		UpdateDate:  doc.UpdateDate,
	}
}
