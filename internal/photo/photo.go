// Package photo defines the normalized photo record and the decoding of
// Unsplash listing and search payloads into it.
package photo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Photo is the normalized unit of display data.
type Photo struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	UserName string `json:"userName"`
	Likes    int    `json:"likes"`
}

// apiPhoto mirrors the subset of an Unsplash photo object we consume.
type apiPhoto struct {
	ID   string `json:"id"`
	URLs struct {
		Small string `json:"small"`
	} `json:"urls"`
	User struct {
		Username string `json:"username"`
	} `json:"user"`
	Likes int `json:"likes"`
}

// Payload is one of the two response shapes the API returns.
type Payload interface {
	items() []apiPhoto
}

// SearchResponse is the search endpoint shape: {"results": [...]}.
type SearchResponse struct {
	Results []apiPhoto `json:"results"`
}

func (r SearchResponse) items() []apiPhoto { return r.Results }

// ListResponse is the default listing shape: a bare array.
type ListResponse []apiPhoto

func (r ListResponse) items() []apiPhoto { return r }

// ErrUnknownShape is returned when a body is neither an object nor an array.
var ErrUnknownShape = errors.New("unrecognized payload shape")

// ErrMissingResults is returned for an object body with no results list.
var ErrMissingResults = errors.New("search response has no results")

// DecodePayload decodes body into the matching Payload variant.
func DecodePayload(body []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrUnknownShape
	}

	switch trimmed[0] {
	case '{':
		// An object without a results list is not a photo list.
		var r struct {
			Results *[]apiPhoto `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return nil, fmt.Errorf("decoding search response: %w", err)
		}
		if r.Results == nil {
			return nil, ErrMissingResults
		}
		return SearchResponse{Results: *r.Results}, nil
	case '[':
		var r ListResponse
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return nil, fmt.Errorf("decoding list response: %w", err)
		}
		return r, nil
	default:
		return nil, ErrUnknownShape
	}
}

// Normalize maps either payload variant to photo records, preserving order.
func Normalize(p Payload) []Photo {
	if p == nil {
		return nil
	}
	items := p.items()
	photos := make([]Photo, 0, len(items))
	for _, it := range items {
		likes := it.Likes
		if likes < 0 {
			likes = 0
		}
		photos = append(photos, Photo{
			ID:       it.ID,
			ImageURL: it.URLs.Small,
			UserName: it.User.Username,
			Likes:    likes,
		})
	}
	return photos
}

// Decode is DecodePayload followed by Normalize.
func Decode(body []byte) ([]Photo, error) {
	p, err := DecodePayload(body)
	if err != nil {
		return nil, err
	}
	return Normalize(p), nil
}
