package project

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ramsey-B/clover/pkg/docstore"
	"github.com/Ramsey-B/clover/pkg/models"
)

const Collection = "project"

var Indexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "legacyId", Value: 1}},
		Options: options.Index().SetName("idx_legacyId"),
	},
}

type ProjectDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	LegacyID         int                `bson:"legacyId"`
	Name             string             `bson:"name"`
	TotalM2          int                `bson:"totalM2"`
	DaysYear         int                `bson:"daysYear"`
	Factor           int                `bson:"factor"`
	Address          string             `bson:"address"`
	Contact          string             `bson:"contact"`
	TelephoneNumber  string             `bson:"telephoneNumber"`
	CellphoneNumber  string             `bson:"cellphoneNumber"`
	RegistrationDate time.Time          `bson:"registrationDate"`
	Level            int                `bson:"level"`
	CreatedDate      time.Time          `bson:"createdDate"`
	UpdateDate       time.Time          `bson:"updateDate"`
}

func FromProject(p models.Project) (ProjectDocument, error) {
	oid, err := docstore.OptionalID(p.ID)
	if err != nil {
		return ProjectDocument{}, err
	}
	return ProjectDocument{
		ID:               oid,
		LegacyID:         p.LegacyID,
		Name:             p.Name,
		TotalM2:          p.TotalM2,
		DaysYear:         p.DaysYear,
		Factor:           p.Factor,
		Address:          p.Address,
		Contact:          p.Contact,
		TelephoneNumber:  p.TelephoneNumber,
		CellphoneNumber:  p.CellphoneNumber,
		RegistrationDate: p.RegistrationDate,
		Level:            p.Level,
		CreatedDate:      p.CreatedDate,
		UpdateDate:       p.UpdateDate,
	}, nil
}

func ToProject(doc ProjectDocument) models.Project {
	return models.Project{
		ID:               docstore.HexID(doc.ID),
		LegacyID:         doc.LegacyID,
		Name:             doc.Name,
		TotalM2:          doc.TotalM2,
		DaysYear:         doc.DaysYear,
		Factor:           doc.Factor,
		Address:          doc.Address,
		Contact:          doc.Contact,
		TelephoneNumber:  doc.TelephoneNumber,
		CellphoneNumber:  doc.CellphoneNumber,
		RegistrationDate: doc.RegistrationDate,
		Level:            doc.Level,
		CreatedDate:      doc.CreatedDate,
		UpdateDate:       doc.UpdateDate,
	}
}
