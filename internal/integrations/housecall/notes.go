package housecall

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/structerr"
)

// AddNote appends a note to a CRM entity (customer or job).
func (c *Client) AddNote(ctx context.Context, entityID, content string) error {
	payload := struct {
		Content string `json:"content"`
	}{content}

	path := fmt.Sprintf("/notes/%s", entityID)
	return c.do(ctx, http.MethodPost, path, nil, payload, nil)
}

// CreateLead records a follow-up lead on a customer. Not every CRM plan
// has the leads endpoint; when the route itself is absent the caller is
// expected to degrade to AddNote (see ErrLeadsUnsupported).
func (c *Client) CreateLead(ctx context.Context, customerID, source, notes string, tags []string) (*Lead, error) {
	payload := struct {
		CustomerID string   `json:"customer_id"`
		Source     string   `json:"source"`
		Notes      string   `json:"notes"`
		Tags       []string `json:"tags,omitempty"`
	}{customerID, source, notes, tags}

	var out Lead
	if err := c.do(ctx, http.MethodPost, "/leads", nil, payload, &out); err != nil {
		if se, ok := structerr.As(err); ok && se.Type == structerr.TypeNotFound {
			return nil, fmt.Errorf("%w: %v", ErrLeadsUnsupported, err)
		}
		return nil, err
	}
	return &out, nil
}
