package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Open connects to the document store and verifies the connection
// before any repo is handed out. Every later call is single-shot; no
// retry policy exists anywhere in this service.
func Open(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}
	return client, client.Database(dbName), nil
}

// Probe is the health-check view of the client.
type Probe struct{ client *mongo.Client }

func NewProbe(client *mongo.Client) *Probe { return &Probe{client: client} }

func (p *Probe) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
