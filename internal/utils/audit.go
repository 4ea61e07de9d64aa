package utils

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// AuditLog represents an audit log entry
type AuditLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action     string             `bson:"action" json:"action"`
	Resource   string             `bson:"resource" json:"resource"`
	ResourceID string             `bson:"resource_id" json:"resource_id"`
	OldValue   interface{}        `bson:"old_value,omitempty" json:"old_value,omitempty"`
	NewValue   interface{}        `bson:"new_value,omitempty" json:"new_value,omitempty"`
	UserID     string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	IPAddress  string             `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Metadata   map[string]string  `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Audit constants
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
	AuditActionDraw   = "DRAW"
	AuditActionLogin  = "LOGIN"
	AuditActionLogout = "LOGOUT"

	AuditResourceBeneficiary = "beneficiary"
	AuditResourceActivity    = "activity"
	AuditResourceRaffle      = "raffle"
	AuditResourceNutrition   = "nutrition"
	AuditResourceSession     = "session"
)

// AuditContext contains request information attached to audit entries
type AuditContext struct {
	UserID    string
	IPAddress string
	UserAgent string
	RequestID string
}

type auditContextKey struct{}

// WithAuditContext attaches request information for later audit entries
func WithAuditContext(ctx context.Context, auditCtx AuditContext) context.Context {
	return context.WithValue(ctx, auditContextKey{}, auditCtx)
}

// AuditContextFrom returns the audit context attached to ctx, if any
func AuditContextFrom(ctx context.Context) AuditContext {
	auditCtx, _ := ctx.Value(auditContextKey{}).(AuditContext)
	return auditCtx
}

// GetAuditContextFromGin extracts audit context from Gin context
func GetAuditContextFromGin(c *gin.Context) AuditContext {
	return AuditContext{
		UserID:    c.GetString("user_email"),
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString("request_id"),
	}
}

// AuditSink persists a batch of audit entries
type AuditSink interface {
	WriteBatch(ctx context.Context, batch []AuditLog) error
}

// MongoAuditSink bulk-inserts audit entries into a collection
type MongoAuditSink struct {
	Collection *mongo.Collection
}

func (s MongoAuditSink) WriteBatch(ctx context.Context, batch []AuditLog) error {
	operations := make([]mongo.WriteModel, 0, len(batch))
	for _, entry := range batch {
		operations = append(operations, mongo.NewInsertOneModel().SetDocument(entry))
	}
	_, err := s.Collection.BulkWrite(ctx, operations, options.BulkWrite().SetOrdered(false))
	return err
}

// LogAuditSink writes audit entries to the structured log
type LogAuditSink struct {
	Logger *logging.SafeLogger
}

func (s LogAuditSink) WriteBatch(ctx context.Context, batch []AuditLog) error {
	for _, entry := range batch {
		s.Logger.Info("audit",
			zap.String("action", entry.Action),
			zap.String("resource", entry.Resource),
			zap.String("resource_id", entry.ResourceID),
			zap.String("user_id", entry.UserID),
			zap.String("request_id", entry.RequestID),
			zap.Time("timestamp", entry.Timestamp),
		)
	}
	return nil
}

// AuditWorker manages asynchronous, batched audit logging
type AuditWorker struct {
	auditChan chan AuditLog
	sink      AuditSink
	workers   int
	batchSize int
	interval  time.Duration
	wg        sync.WaitGroup
	stopOnce  sync.Once
	logger    *logging.SafeLogger
}

// NewAuditWorker starts workers draining entries into sink
func NewAuditWorker(sink AuditSink, workers, bufferSize int) *AuditWorker {
	if workers <= 0 {
		workers = 1
	}
	if bufferSize <= 0 {
		bufferSize = 100
	}
	aw := &AuditWorker{
		auditChan: make(chan AuditLog, bufferSize),
		sink:      sink,
		workers:   workers,
		batchSize: 100,
		interval:  100 * time.Millisecond,
		logger:    logging.Named("audit"),
	}
	aw.start()
	return aw
}

// start starts the audit worker pool
func (aw *AuditWorker) start() {
	aw.wg.Add(aw.workers)
	for i := 0; i < aw.workers; i++ {
		go func() {
			defer aw.wg.Done()
			aw.processAuditLogs()
		}()
	}

	aw.logger.Info("audit worker started",
		zap.Int("workers", aw.workers),
		zap.Int("buffer_size", cap(aw.auditChan)))
}

// processAuditLogs collects entries and flushes them by size or on a timer
func (aw *AuditWorker) processAuditLogs() {
	ticker := time.NewTicker(aw.interval)
	defer ticker.Stop()

	var batch []AuditLog
	for {
		select {
		case entry, ok := <-aw.auditChan:
			if !ok {
				aw.flushBatch(batch)
				return
			}
			batch = append(batch, entry)
			if len(batch) >= aw.batchSize {
				aw.flushBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			aw.flushBatch(batch)
			batch = batch[:0]
		}
	}
}

func (aw *AuditWorker) flushBatch(batch []AuditLog) {
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := aw.sink.WriteBatch(ctx, batch); err != nil {
		aw.logger.Error("failed to write audit batch",
			zap.Error(err),
			zap.Int("batch_size", len(batch)))
		return
	}
	aw.logger.Debug("audit batch written", zap.Int("batch_size", len(batch)))
}

// Record queues an entry built from ctx without blocking. Entries are
// dropped with a warning when the buffer is full.
func (aw *AuditWorker) Record(ctx context.Context, action, resource, resourceID string, oldValue, newValue interface{}, metadata map[string]string) {
	if aw == nil {
		return
	}
	auditCtx := AuditContextFrom(ctx)
	entry := AuditLog{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		OldValue:   SanitizeAuditData(oldValue),
		NewValue:   SanitizeAuditData(newValue),
		UserID:     auditCtx.UserID,
		IPAddress:  auditCtx.IPAddress,
		UserAgent:  auditCtx.UserAgent,
		RequestID:  auditCtx.RequestID,
		Timestamp:  time.Now().UTC(),
		Metadata:   metadata,
	}

	defer func() {
		// Record after Stop must not panic on the closed channel.
		if recover() != nil {
			aw.logger.Warn("audit worker stopped, entry dropped", zap.String("action", action))
		}
	}()

	select {
	case aw.auditChan <- entry:
	default:
		aw.logger.Warn("audit buffer full, entry dropped",
			zap.String("action", action),
			zap.String("resource", resource))
	}
}

// Stop drains pending entries and stops the workers
func (aw *AuditWorker) Stop() {
	if aw == nil {
		return
	}
	aw.stopOnce.Do(func() {
		close(aw.auditChan)
		aw.wg.Wait()
	})
}

// SanitizeAuditData removes sensitive information from audit data
func SanitizeAuditData(data interface{}) interface{} {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return data
	}

	var sanitized interface{}
	if err := json.Unmarshal(jsonData, &sanitized); err != nil {
		return data
	}

	sanitizeMap(sanitized)
	return sanitized
}

// sanitizeMap recursively redacts sensitive fields
func sanitizeMap(data interface{}) {
	switch v := data.(type) {
	case map[string]interface{}:
		for _, field := range []string{"password", "token", "secret", "medications", "pathologies"} {
			if _, exists := v[field]; exists {
				v[field] = "[REDACTED]"
			}
		}
		for _, value := range v {
			sanitizeMap(value)
		}
	case []interface{}:
		for _, item := range v {
			sanitizeMap(item)
		}
	}
}
