package dataset

import (
	"context"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chartwright/chartwright/pkg/cache"
	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
)

const mongoTimeout = 10 * time.Second

// MongoLoader reads series from MongoDB collections. The locator is a
// standard connection URI with the database in the path and the collection
// named by a collection query parameter:
//
//	mongodb://host:27017/metrics?collection=revenue
//
// Every document becomes one entry; documents use the label, value, values
// and max fields.
type MongoLoader struct {
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
}

// NewMongoLoader creates a MongoDB loader. Pass a nil cache to read every
// time.
func NewMongoLoader(c cache.Cache, keyer cache.Keyer) *MongoLoader {
	return &MongoLoader{cache: c, keyer: keyer, ttl: DefaultTTL}
}

// entryDoc is the collection document shape.
type entryDoc struct {
	Label  string    `bson:"label,omitempty"`
	Value  float64   `bson:"value"`
	Values []float64 `bson:"values,omitempty"`
	Max    float64   `bson:"max,omitempty"`
}

// Load connects to the locator's server and reads the collection in natural
// order.
func (l *MongoLoader) Load(ctx context.Context, locator string) (chart.Series, error) {
	uri, db, coll, err := splitMongoLocator(locator)
	if err != nil {
		return nil, err
	}

	return cachedLoad(ctx, l.cache, l.keyer, locator, l.ttl, func() (chart.Series, error) {
		ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
		defer cancel()

		client, err := mongo.Connect(ctx, mongoopts.Client().ApplyURI(uri))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connecting to %s", uri)
		}
		defer func() { _ = client.Disconnect(ctx) }()

		cur, err := client.Database(db).Collection(coll).Find(ctx, bson.D{})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNetwork, err, "querying %s.%s", db, coll)
		}
		var docs []entryDoc
		if err := cur.All(ctx, &docs); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDecode, err, "decoding documents from %s.%s", db, coll)
		}

		series := make(chart.Series, len(docs))
		for i, d := range docs {
			series[i] = chart.Entry{Label: d.Label, Value: d.Value, Values: d.Values, Max: d.Max}
		}
		return series, nil
	})
}

// splitMongoLocator separates the driver URI from the database and collection
// parts. The collection parameter is stripped before the URI reaches the
// driver, which rejects options it does not know.
func splitMongoLocator(locator string) (uri, db, coll string, err error) {
	u, err := url.Parse(locator)
	if err != nil {
		return "", "", "", errors.Wrap(errors.ErrCodeInvalidLocator, err, "invalid mongodb locator %s", locator)
	}

	db = strings.TrimPrefix(u.Path, "/")
	q := u.Query()
	coll = q.Get("collection")
	if db == "" || coll == "" {
		return "", "", "", errors.New(errors.ErrCodeInvalidLocator,
			"mongodb locator needs a database path and collection parameter: %s", locator)
	}

	q.Del("collection")
	u.RawQuery = q.Encode()
	return u.String(), db, coll, nil
}
