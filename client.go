package supportdesk

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/app"
	"github.com/kailas-cloud/supportdesk/internal/config"
	"github.com/kailas-cloud/supportdesk/internal/domain"
	domorder "github.com/kailas-cloud/supportdesk/internal/domain/order"
	queryuc "github.com/kailas-cloud/supportdesk/internal/usecase/query"
)

// Client is the supportdesk SDK entry point. It is safe for concurrent use.
type Client struct {
	cfg    config.Config
	logger *zap.Logger

	mu       sync.RWMutex
	services *app.Services
}

// New builds a Client. Without WithOpenAI only lexical retrieval is available.
func New(opts ...Option) (*Client, error) {
	cfg := config.Config{}
	logger := zap.NewNop()
	for _, o := range opts {
		if lo, ok := o.(loggerOption); ok && lo.logger != nil {
			logger = lo.logger
		}
		o.apply(&cfg)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("supportdesk: %w", err)
	}

	services, err := app.NewServices(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("supportdesk: %w", err)
	}
	return &Client{cfg: cfg, logger: logger, services: services}, nil
}

// Close releases store and cache connections.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.services != nil {
		c.services.Close()
		c.services = nil
	}
}

func (c *Client) closed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.services == nil
}

func (c *Client) current() (*app.Services, func(), error) {
	c.mu.RLock()
	if c.services == nil {
		c.mu.RUnlock()
		return nil, nil, ErrClosed
	}
	return c.services, c.mu.RUnlock, nil
}

// Ask retrieves the most relevant documents and composes an answer.
func (c *Client) Ask(ctx context.Context, question string) (Answer, error) {
	svc, release, err := c.current()
	if err != nil {
		return Answer{}, err
	}
	defer release()

	res, err := svc.Query.Answer(ctx, question)
	if err != nil {
		return Answer{}, fmt.Errorf("ask: %w", err)
	}
	return Answer{
		Text:     queryuc.Compose(res.Results),
		Strategy: string(res.Strategy),
		Docs:     toDocuments(res.Results),
	}, nil
}

// OrderStatus looks up an order by id.
func (c *Client) OrderStatus(ctx context.Context, orderID string) (OrderStatus, error) {
	svc, release, err := c.current()
	if err != nil {
		return OrderStatus{}, err
	}
	defer release()

	reply, err := svc.Orders.Status(ctx, orderID)
	if err != nil {
		return OrderStatus{}, fmt.Errorf("order status: %w", err)
	}
	return OrderStatus{Order: toOrder(reply.Order), Message: reply.Message}, nil
}

// CanReturn checks the return window. An empty currentDate means today.
func (c *Client) CanReturn(ctx context.Context, orderID, currentDate string) (ReturnCheck, error) {
	svc, release, err := c.current()
	if err != nil {
		return ReturnCheck{}, err
	}
	defer release()

	reply, err := svc.Orders.CanReturn(ctx, orderID, currentDate)
	if err != nil {
		return ReturnCheck{}, fmt.Errorf("can return: %w", err)
	}
	return ReturnCheck(reply), nil
}

// Health reports store, cache and provider readiness.
func (c *Client) Health(ctx context.Context) (Health, error) {
	svc, release, err := c.current()
	if err != nil {
		return Health{}, err
	}
	defer release()

	r := svc.Health.Check(ctx)
	checks := make(map[string]string, len(r.Checks))
	for name, res := range r.Checks {
		checks[name] = string(res)
	}
	return Health{Status: string(r.Status), Strategy: r.Strategy, Documents: r.Documents, Checks: checks}, nil
}

// Ingest embeds every product and policy, replaces the vector store and
// reloads the online services. It requires WithOpenAI.
func (c *Client) Ingest(ctx context.Context) (IngestReport, error) {
	if c.closed() {
		return IngestReport{}, ErrClosed
	}
	ing, err := app.NewIngest(ctx, c.cfg, c.logger)
	if err != nil {
		return IngestReport{}, fmt.Errorf("supportdesk: %w", err)
	}
	report, err := ing.Pipeline.Run(ctx)
	ing.Close()
	if err != nil {
		return IngestReport{}, fmt.Errorf("ingest: %w", err)
	}

	services, err := app.NewServices(ctx, c.cfg, c.logger)
	if err != nil {
		return IngestReport{}, fmt.Errorf("reload after ingest: %w", err)
	}
	c.mu.Lock()
	old := c.services
	if old == nil {
		// Closed while the pipeline ran.
		c.mu.Unlock()
		services.Close()
		return IngestReport{}, ErrClosed
	}
	c.services = services
	c.mu.Unlock()
	old.Close()

	return IngestReport(report), nil
}

func toDocuments(scored []domain.ScoredDocument) []Document {
	docs := make([]Document, len(scored))
	for i, d := range scored {
		docs[i] = Document{ID: d.ID, Type: string(d.Type), Text: d.Text, Score: d.Score}
	}
	return docs
}

func toOrder(o domorder.Order) Order {
	return Order{
		ID:                o.OrderID,
		ProductName:       o.ProductName,
		Status:            o.Status,
		EstimatedDelivery: o.EstimatedDelivery,
		TrackingID:        o.TrackingID,
		CanReturnTill:     o.CanReturnTill,
	}
}
