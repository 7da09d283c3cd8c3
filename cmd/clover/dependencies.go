package main

import (
	"context"

	"github.com/Gobusters/ectologger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ramsey-B/clover/internal/repositories/areaactivity"
	"github.com/Ramsey-B/clover/internal/repositories/employee"
	"github.com/Ramsey-B/clover/internal/repositories/project"
	"github.com/Ramsey-B/clover/pkg/docstore"
	"github.com/Ramsey-B/clover/pkg/kafka"
	"github.com/Ramsey-B/clover/pkg/redis"
)

type mongoDependency struct {
	cfg    docstore.Config
	logger ectologger.Logger
	client *docstore.Client
}

func (d *mongoDependency) GetName() string     { return "mongo" }
func (d *mongoDependency) DependsOn() []string { return nil }

func (d *mongoDependency) Start(ctx context.Context) error {
	client, err := docstore.Connect(ctx, d.cfg, d.logger)
	if err != nil {
		return err
	}
	d.client = client
	return nil
}

func (d *mongoDependency) Stop(ctx context.Context) error {
	if d.client == nil {
		return nil
	}
	return d.client.Disconnect(ctx)
}

func (d *mongoDependency) Ping(ctx context.Context) error {
	return d.client.Ping(ctx)
}

// indexDependency creates the lookup indexes the reconciler relies on.
type indexDependency struct {
	mongo  *mongoDependency
	logger ectologger.Logger
}

func (d *indexDependency) GetName() string     { return "mongo-indexes" }
func (d *indexDependency) DependsOn() []string { return []string{"mongo"} }

func (d *indexDependency) Start(ctx context.Context) error {
	db := d.mongo.client.Database()
	if err := ensureIndexes(ctx, docstore.NewCollection[project.ProjectDocument](db, project.Collection, d.logger), project.Indexes); err != nil {
		return err
	}
	if err := ensureIndexes(ctx, docstore.NewCollection[employee.EmployeeDocument](db, employee.Collection, d.logger), employee.Indexes); err != nil {
		return err
	}
	return ensureIndexes(ctx, docstore.NewCollection[areaactivity.AreaActivityDocument](db, areaactivity.Collection, d.logger), areaactivity.Indexes)
}

func (d *indexDependency) Stop(context.Context) error { return nil }

func ensureIndexes[T any](ctx context.Context, coll *docstore.Collection[T], indexes []mongo.IndexModel) error {
	return coll.EnsureIndexes(ctx, indexes)
}

type redisDependency struct {
	client *redis.Client
}

func (d *redisDependency) GetName() string     { return "redis" }
func (d *redisDependency) DependsOn() []string { return nil }

func (d *redisDependency) Start(ctx context.Context) error {
	return d.client.Ping(ctx)
}

func (d *redisDependency) Stop(context.Context) error {
	return d.client.Close()
}

type kafkaDependency struct {
	producer *kafka.Producer
}

func (d *kafkaDependency) GetName() string     { return "kafka" }
func (d *kafkaDependency) DependsOn() []string { return nil }

func (d *kafkaDependency) Start(ctx context.Context) error {
	return d.producer.Ping(ctx)
}

func (d *kafkaDependency) Stop(context.Context) error {
	return d.producer.Close()
}
