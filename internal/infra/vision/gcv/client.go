// Package gcv localizes objects in images with Google Cloud Vision.
package gcv

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"buildquote/backend/internal/domain/detect"
)

const maxResults = 100

type annotator interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
	Close() error
}

type Client struct {
	api annotator
}

// New builds a client authenticated with a service-account JSON document.
func New(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	api, err := vision.NewImageAnnotatorClient(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}
	return &Client{api: api}, nil
}

func (c *Client) Close() error { return c.api.Close() }

func (c *Client) LocalizeObjects(ctx context.Context, imagePath string) ([]detect.Object, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	resp, err := c.api.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image: &visionpb.Image{Content: data},
			Features: []*visionpb.Feature{{
				Type:       visionpb.Feature_OBJECT_LOCALIZATION,
				MaxResults: maxResults,
			}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("object localization: %w", err)
	}
	if len(resp.GetResponses()) == 0 {
		return nil, errors.New("object localization: empty response")
	}
	r := resp.GetResponses()[0]
	if st := r.GetError(); st != nil && st.GetCode() != 0 {
		return nil, fmt.Errorf("object localization: code %d: %s", st.GetCode(), st.GetMessage())
	}

	anns := r.GetLocalizedObjectAnnotations()
	out := make([]detect.Object, 0, len(anns))
	for _, a := range anns {
		out = append(out, detect.Object{Name: a.GetName(), Score: a.GetScore()})
	}
	return out, nil
}

// DecodeCredentials decodes the base64 service-account blob and checks that
// it is a JSON object naming a credential type.
func DecodeCredentials(b64 string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	if probe.Type == "" {
		return nil, errors.New("parse credentials: missing type")
	}
	return raw, nil
}
