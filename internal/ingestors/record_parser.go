package ingestors

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"delivery-analytics/internal/models"
)

// RecordParser turns one raw ingested record into a canonical event.
// order_id, event_type and ts are required; a record missing or mistyping
// any of them is malformed and rejected. The body payload is parsed
// opportunistically: a payload that fails to parse is discarded while the
// event itself is still admitted.
//
//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	Parse(record map[string]any) (*models.Event, error)
}

type recordParser struct{}

func NewRecordParser() RecordParser {
	return &recordParser{}
}

// wire shapes of the order_created payload.
type wireBody struct {
	Brand        string     `json:"brand"`
	CustomerLat  *float64   `json:"customer_lat"`
	CustomerLon  *float64   `json:"customer_lon"`
	CustomerAddr string     `json:"customer_addr"`
	Items        []wireItem `json:"items"`
}

type wireItem struct {
	ID         int64   `json:"id"`
	CategoryID int64   `json:"category_id"`
	MenuID     int64   `json:"menu_id"`
	BrandID    int64   `json:"brand_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Qty        int64   `json:"qty"`
}

func (p *recordParser) Parse(record map[string]any) (*models.Event, error) {
	orderID, err := requiredString(record, "order_id")
	if err != nil {
		return nil, err
	}
	eventType, err := requiredString(record, "event_type")
	if err != nil {
		return nil, err
	}
	tsRaw, err := requiredString(record, "ts")
	if err != nil {
		return nil, err
	}
	ts, err := parseTimestamp(tsRaw)
	if err != nil {
		return nil, err
	}

	ev := &models.Event{
		OrderID:   orderID,
		EventType: models.EventType(eventType),
		Timestamp: ts,
	}

	if locationVal, ok := record["location"]; ok {
		if location, ok := locationVal.(string); ok {
			ev.Location = strings.TrimSpace(location)
		}
	}
	if seqVal, ok := record["sequence"]; ok {
		if seqNum, ok := seqVal.(float64); ok {
			seq := int64(seqNum)
			ev.Sequence = &seq
		}
	}

	ev.Body = parseBody(record["body"])
	return ev, nil
}

// parseBody decodes the payload from either a JSON-encoded string (the
// upstream wire form) or an already-decoded object. Any decode failure
// returns nil: payload failure is never fatal to event admission.
func parseBody(raw any) *models.EventBody {
	if raw == nil {
		return nil
	}

	var data []byte
	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		data = []byte(v)
	case map[string]any:
		var err error
		data, err = json.Marshal(v)
		if err != nil {
			return nil
		}
	default:
		return nil
	}

	var wb wireBody
	if err := json.Unmarshal(data, &wb); err != nil {
		return nil
	}

	body := &models.EventBody{
		Brand:        wb.Brand,
		CustomerLat:  wb.CustomerLat,
		CustomerLon:  wb.CustomerLon,
		CustomerAddr: wb.CustomerAddr,
	}
	for _, item := range wb.Items {
		body.Items = append(body.Items, models.OrderItem{
			ID:         item.ID,
			CategoryID: item.CategoryID,
			MenuID:     item.MenuID,
			BrandID:    item.BrandID,
			Name:       item.Name,
			Price:      item.Price,
			Qty:        item.Qty,
		})
	}
	return body
}

func requiredString(record map[string]any, field string) (string, error) {
	val, ok := record[field]
	if !ok {
		return "", fmt.Errorf("missing %s", field)
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", field)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s cannot be empty", field)
	}
	return s, nil
}

// parseTimestamp parses RFC3339 and common ISO-8601 variants.
func parseTimestamp(raw string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000Z",
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ts format: %s", raw)
}
