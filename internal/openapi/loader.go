package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/oasview/internal/oaserr"
)

const fetchTimeout = 10 * time.Second

// IsURL reports whether the document location is a remote URL rather than
// a local file path.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Load reads and parses an OpenAPI document from a local file or an
// http(s) URL. JSON documents may carry comments and trailing commas;
// anything that does not parse as JSON is parsed as YAML. All failures
// are DocumentLoad errors.
func Load(path string) (*Document, error) {
	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if looksLikeJSON(data) {
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, oaserr.Wrap(oaserr.KindDocumentLoad, err, "parse %s as JSON", path)
		}
	} else if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, oaserr.Wrap(oaserr.KindDocumentLoad, err, "parse %s as YAML", path)
	}

	if doc.OpenAPI == "" && len(doc.Paths) == 0 {
		return nil, oaserr.DocumentLoad("%s is not an OpenAPI document: no openapi version and no paths", path)
	}

	return &doc, nil
}

// LoadGeneric reads the same document but decodes it into the generic
// map/slice form, for callers that address it structurally (queries)
// rather than through the typed model.
func LoadGeneric(path string) (interface{}, error) {
	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	var value interface{}
	if looksLikeJSON(data) {
		if err := json.Unmarshal(jsonc.ToJSON(data), &value); err != nil {
			return nil, oaserr.Wrap(oaserr.KindDocumentLoad, err, "parse %s as JSON", path)
		}
	} else if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, oaserr.Wrap(oaserr.KindDocumentLoad, err, "parse %s as YAML", path)
	}

	return value, nil
}

// readDocument fetches the raw document bytes from a URL or a file.
func readDocument(path string) ([]byte, error) {
	if IsURL(path) {
		client := &http.Client{Timeout: fetchTimeout}
		resp, err := client.Get(path)
		if err != nil {
			return nil, oaserr.Wrap(oaserr.KindDocumentLoad, err, "fetch %s", path)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, oaserr.DocumentLoad("fetch %s: unexpected status code %d", path, resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, oaserr.Wrap(oaserr.KindDocumentLoad, err, "read response from %s", path)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oaserr.Wrap(oaserr.KindDocumentLoad, err, "read %s", path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, oaserr.DocumentLoad("%s is empty", path)
	}
	return data, nil
}

// looksLikeJSON reports whether the raw document starts a JSON object.
// OpenAPI documents are objects, so a leading brace is decisive; anything
// else goes through the YAML parser.
func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// String implements fmt.Stringer for log lines and the status bar.
func (i Info) String() string {
	if i.Version != "" {
		return fmt.Sprintf("%s %s", i.Title, i.Version)
	}
	return i.Title
}
