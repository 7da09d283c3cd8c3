package employee

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ramsey-B/clover/pkg/docstore"
	"github.com/Ramsey-B/clover/pkg/models"
)

const Collection = "employee"

var Indexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "projectId", Value: 1}, {Key: "number", Value: 1}},
		Options: options.Index().SetName("idx_projectId_number"),
	},
}

type EmployeeDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   string             `bson:"firstName"`
	LastName    string             `bson:"lastName"`
	Number      int                `bson:"number"`
	Observation string             `bson:"observation"`
	ProjectID   string             `bson:"projectId"`
	CreatedDate time.Time          `bson:"createdDate"`
	UpdateDate  time.Time          `bson:"updateDate"`
}

func FromEmployee(e models.Employee) (EmployeeDocument, error) {
	oid, err := docstore.OptionalID(e.ID)
	if err != nil {
		return EmployeeDocument{}, err
	}
	return EmployeeDocument{
		ID:          oid,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Number:      e.Number,
		Observation: e.Observation,
		ProjectID:   e.ProjectID,
		CreatedDate: e.CreatedDate,
		UpdateDate:  e.UpdateDate,
	}, nil
}

func ToEmployee(doc EmployeeDocument) models.Employee {
	return models.Employee{
		ID:          docstore.HexID(doc.ID),
		FirstName:   doc.FirstName,
		LastName:    doc.LastName,
		Number:      doc.Number,
		Observation: doc.Observation,
		ProjectID:   doc.ProjectID,
		CreatedDate: doc.CreatedDate,
		UpdateDate:  doc.UpdateDate,
	}
}
