package app

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/dan13ram/clpd-settlement/models"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"
)

const (
	CollectionLocks = "locks"
)

type Database interface {
	Connect() error
	SetupLockers() error
	SetupIndexes() error
	Disconnect() error

	InsertOne(collection string, data interface{}) error
	FindOne(collection string, filter interface{}, result interface{}) error
	FindLatest(collection string, filter interface{}, sort interface{}, result interface{}) error
	FindMany(collection string, filter interface{}, result interface{}) error
	FindManySorted(collection string, filter interface{}, sort interface{}, result interface{}) error
	UpdateOne(collection string, filter interface{}, update interface{}) (int64, error)
	UpsertOne(collection string, filter interface{}, update interface{}) error
	DeleteOne(collection string, filter interface{}) (int64, error)
	WithTransaction(fn func(tx Database) error) error

	BucketExists(bucket string) (bool, error)
	CreateBucket(bucket string) error
	UploadFile(bucket string, filename string, data []byte, contentType string) error
	DownloadFile(bucket string, filename string) ([]byte, error)

	XLock(resourceId string, ttl time.Duration) (string, error)
	Unlock(lockId string) error
	PurgeExpiredLocks() error
}

// mongoDatabase is a wrapper around the mongo database
type mongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	locker   *lock.Client

	// set when the wrapper is bound to a running transaction
	sessCtx mongo.SessionContext
}

var (
	DB Database
)

func (d *mongoDatabase) timeout() time.Duration {
	return time.Duration(Config.MongoDB.TimeoutMillis) * time.Millisecond
}

// opContext derives the per operation context, inheriting the session when
// the wrapper runs inside a transaction
func (d *mongoDatabase) opContext() (context.Context, context.CancelFunc) {
	var parent context.Context = context.Background()
	if d.sessCtx != nil {
		parent = d.sessCtx
	}
	return context.WithTimeout(parent, d.timeout())
}

// Connect connects to the database
func (d *mongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")
	wcMajority := writeconcern.New(writeconcern.WMajority(), writeconcern.WTimeout(d.timeout()))

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(wcMajority))
	if err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

// SetupLockers sets up the locker
func (d *mongoDatabase) SetupLockers() error {
	log.Debug("[DB] Setting up locker")

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()

	locker := lock.NewClient(d.db.Collection(CollectionLocks))
	if err := locker.CreateIndexes(ctx); err != nil {
		return err
	}
	d.locker = locker

	log.Info("[DB] Locker setup")
	return nil
}

func randomString(n int) string {
	const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	var buf = make([]byte, n)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = alphanum[b%byte(len(alphanum))]
	}
	return string(buf)
}

// XLock locks a resource for exclusive access. A positive ttl lets the lock
// be purged if the holder never releases it.
func (d *mongoDatabase) XLock(resourceId string, ttl time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()

	details := lock.LockDetails{}
	if ttl > 0 {
		details.TTL = uint(ttl.Seconds())
		if details.TTL == 0 {
			details.TTL = 1
		}
	}

	lockId := randomString(32)
	err := d.locker.XLock(ctx, resourceId, lockId, details)
	return lockId, err
}

// Unlock unlocks a resource
func (d *mongoDatabase) Unlock(lockId string) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockId)
	return err
}

// PurgeExpiredLocks removes locks whose ttl has elapsed
func (d *mongoDatabase) PurgeExpiredLocks() error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()

	purged, err := lock.NewPurger(d.locker).Purge(ctx)
	if err != nil {
		return err
	}
	if len(purged) > 0 {
		log.Info("[DB] Purged expired locks: ", len(purged))
	}
	return nil
}

type indexSetup struct {
	collection string
	model      mongo.IndexModel
}

func indexSetups() []indexSetup {
	mintedOnly := bson.M{"mint_transaction_hash": bson.M{"$exists": true}}
	bankKeys := bson.D{{Key: "owner", Value: 1}, {Key: "info.bank_name", Value: 1}, {Key: "info.account_number", Value: 1}}

	return []indexSetup{
		{models.CollectionDeposits, mongo.IndexModel{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
		}},
		{models.CollectionDeposits, mongo.IndexModel{
			Keys:    bson.D{{Key: "mint_transaction_hash", Value: 1}, {Key: "mint_log_index", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(mintedOnly),
		}},
		{models.CollectionBurnRequests, mongo.IndexModel{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
		}},
		{models.CollectionApprovalTokens, mongo.IndexModel{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		}},
		{models.CollectionApprovalMembers, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{models.CollectionBanks, mongo.IndexModel{
			Keys:    bankKeys,
			Options: options.Index().SetUnique(true),
		}},
		{models.CollectionUnmatchedMints, mongo.IndexModel{
			Keys:    bson.D{{Key: "transaction_hash", Value: 1}, {Key: "log_index", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{models.CollectionBalanceSamples, mongo.IndexModel{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		}},
		{models.CollectionNotifications, mongo.IndexModel{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
		}},
		{models.CollectionHealthChecks, mongo.IndexModel{
			Keys:    bson.D{{Key: "hostname", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
	}
}

// SetupIndexes creates the indexes the stores rely on for uniqueness and expiry
func (d *mongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")

	for _, setup := range indexSetups() {
		log.Debug("[DB] Setting up indexes for ", setup.collection)
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
		_, err := d.db.Collection(setup.collection).Indexes().CreateOne(ctx, setup.model)
		cancel()
		if err != nil {
			return err
		}
	}

	log.Info("[DB] Indexes setup")
	return nil
}

// Disconnect disconnects from the database
func (d *mongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

// method for insert single value in a collection
func (d *mongoDatabase) InsertOne(collection string, data interface{}) error {
	ctx, cancel := d.opContext()
	defer cancel()
	_, err := d.db.Collection(collection).InsertOne(ctx, data)
	return err
}

// method for find single value in a collection
func (d *mongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := d.opContext()
	defer cancel()
	return d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
}

// method for find the first value in a collection by sort order
func (d *mongoDatabase) FindLatest(collection string, filter interface{}, sort interface{}, result interface{}) error {
	ctx, cancel := d.opContext()
	defer cancel()
	opts := options.FindOne().SetSort(sort)
	return d.db.Collection(collection).FindOne(ctx, filter, opts).Decode(result)
}

// method for find multiple values in a collection
func (d *mongoDatabase) FindMany(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := d.opContext()
	defer cancel()
	cursor, err := d.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	return cursor.All(ctx, result)
}

// method for find multiple values in a collection by sort order
func (d *mongoDatabase) FindManySorted(collection string, filter interface{}, sort interface{}, result interface{}) error {
	ctx, cancel := d.opContext()
	defer cancel()
	cursor, err := d.db.Collection(collection).Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return err
	}
	return cursor.All(ctx, result)
}

// method for update single value in a collection, returns the matched count
func (d *mongoDatabase) UpdateOne(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := d.opContext()
	defer cancel()
	result, err := d.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// method for upsert single value in a collection
func (d *mongoDatabase) UpsertOne(collection string, filter interface{}, update interface{}) error {
	ctx, cancel := d.opContext()
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := d.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	return err
}

// method for delete single value in a collection, returns the deleted count
func (d *mongoDatabase) DeleteOne(collection string, filter interface{}) (int64, error) {
	ctx, cancel := d.opContext()
	defer cancel()
	result, err := d.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// WithTransaction runs fn inside a multi-document transaction. Every write
// made through tx commits together or not at all. fn may be retried by the
// driver on transient transaction errors.
func (d *mongoDatabase) WithTransaction(fn func(tx Database) error) error {
	if d.sessCtx != nil {
		return fn(d)
	}

	session, err := d.db.Client().StartSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	defer session.EndSession(ctx)

	opts := options.Transaction().SetWriteConcern(writeconcern.Majority())
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		tx := &mongoDatabase{
			db:       d.db,
			uri:      d.uri,
			database: d.database,
			locker:   d.locker,
			sessCtx:  sessCtx,
		}
		return nil, fn(tx)
	}, opts)
	return err
}

func (d *mongoDatabase) bucket(name string) (*gridfs.Bucket, error) {
	return gridfs.NewBucket(d.db, options.GridFSBucket().SetName(name))
}

// BucketExists reports whether a gridfs bucket has been created
func (d *mongoDatabase) BucketExists(bucket string) (bool, error) {
	ctx, cancel := d.opContext()
	defer cancel()
	names, err := d.db.ListCollectionNames(ctx, bson.M{"name": bucket + ".files"})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// CreateBucket creates the collections backing a gridfs bucket
func (d *mongoDatabase) CreateBucket(bucket string) error {
	for _, suffix := range []string{".files", ".chunks"} {
		ctx, cancel := d.opContext()
		err := d.db.CreateCollection(ctx, bucket+suffix)
		cancel()
		if err != nil && !isNamespaceExistsError(err) {
			return err
		}
	}
	log.Info("[DB] Created bucket: ", bucket)
	return nil
}

// UploadFile stores data under filename in a gridfs bucket
func (d *mongoDatabase) UploadFile(bucket string, filename string, data []byte, contentType string) error {
	b, err := d.bucket(bucket)
	if err != nil {
		return err
	}
	if err := b.SetWriteDeadline(time.Now().Add(d.timeout())); err != nil {
		return err
	}
	opts := options.GridFSUpload().SetMetadata(bson.M{"content_type": contentType})
	_, err = b.UploadFromStream(filename, bytes.NewReader(data), opts)
	return err
}

// DownloadFile reads the newest revision of filename from a gridfs bucket
func (d *mongoDatabase) DownloadFile(bucket string, filename string) ([]byte, error) {
	b, err := d.bucket(bucket)
	if err != nil {
		return nil, err
	}
	if err := b.SetReadDeadline(time.Now().Add(d.timeout())); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := b.DownloadToStreamByName(filename, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isNamespaceExistsError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Name == "NamespaceExists" || cmdErr.Code == 48
	}
	return false
}

// InitDB creates a new database wrapper
func InitDB() {
	DB = &mongoDatabase{
		uri:      Config.MongoDB.URI,
		database: Config.MongoDB.Database,
	}

	err := DB.Connect()
	if err != nil {
		log.Fatal("[DB] Error connecting to database: ", err)
	}
	err = DB.SetupIndexes()
	if err != nil {
		log.Fatal("[DB] Error setting up indexes: ", err)
	}
	err = DB.SetupLockers()
	if err != nil {
		log.Fatal("[DB] Error setting up lockers: ", err)
	}
	log.Info("[DB] Database initialized")
}
