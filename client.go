package apkin

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/apkin/apkin/internal/apkinregexp"
	"github.com/apkin/apkin/internal/apkinutil"
)

// Client talks to a running `apkin serve`.
type Client struct {
	HTTPClient *http.Client
	Base       *url.URL
}

func (c *Client) init() error {
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.Base == nil {
		var err error
		c.Base, err = url.Parse("http://localhost:8080/")
		return err
	}
	return nil
}

// CreateInspection uploads the APK at name and returns its inspection.
func (c *Client) CreateInspection(ctx context.Context, name string) (*Inspection, error) {
	if err := c.init(); err != nil {
		return nil, err
	}

	if !apkinregexp.IsAPK(name) {
		return nil, fmt.Errorf("not an .apk: %s", name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base.JoinPath("/api/v1/inspections").String(), f)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", apkinutil.ContentTypeAPK)

	inspection := &Inspection{}
	if err = c.do(req, func(body io.Reader) error {
		return json.NewDecoder(body).Decode(inspection)
	}); err != nil {
		return nil, err
	}

	return inspection, nil
}

// GetInspection fetches a previous inspection by ID.
func (c *Client) GetInspection(ctx context.Context, id string) (*Inspection, error) {
	if err := c.init(); err != nil {
		return nil, err
	}

	if !apkinregexp.IsUUID(id) {
		return nil, fmt.Errorf("invalid inspection ID %s", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base.JoinPath("/api/v1/inspections", id).String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", apkinutil.ContentTypeJSON)

	inspection := &Inspection{}
	if err = c.do(req, func(body io.Reader) error {
		return json.NewDecoder(body).Decode(inspection)
	}); err != nil {
		return nil, err
	}

	return inspection, nil
}

// GetIcon fetches the composited icon of a previous inspection.
func (c *Client) GetIcon(ctx context.Context, id string) (image.Image, error) {
	if err := c.init(); err != nil {
		return nil, err
	}

	if !apkinregexp.IsUUID(id) {
		return nil, fmt.Errorf("invalid inspection ID %s", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base.JoinPath("/api/v1/inspections", id, "icon.png").String(), nil)
	if err != nil {
		return nil, err
	}

	var icon image.Image
	if err = c.do(req, func(body io.Reader) error {
		var err error
		icon, _, err = image.Decode(body)
		return err
	}); err != nil {
		return nil, err
	}

	return icon, nil
}

func (c *Client) do(req *http.Request, decode func(io.Reader) error) error {
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body := map[string]string{}
		if err = json.NewDecoder(res.Body).Decode(&body); err == nil {
			if body["error"] != "" {
				return fmt.Errorf("http status code %d: %s", res.StatusCode, body["error"])
			}
		}

		return fmt.Errorf("http status code %d", res.StatusCode)
	}

	return decode(res.Body)
}
