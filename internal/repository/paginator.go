package repository

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPaginationToken is returned when a pagination token cannot be decoded.
	ErrInvalidPaginationToken = errors.New("token is invalid")
)

const (
	// DefaultPaginationLimit is the default number of items per page.
	DefaultPaginationLimit = 10
	maxPaginationLimit     = 100

	tokenPrefix = "product"
)

// Paginator represents pagination state using cursor-based pagination over catalog ids.
type Paginator struct {
	LastID int
}

// Encode encodes the paginator state into a base64-encoded token.
func (t Paginator) Encode() string {
	key := fmt.Sprintf("%s,%d", tokenPrefix, t.LastID)
	return base64.StdEncoding.EncodeToString([]byte(key))
}

// DecodePageToken decodes a base64-encoded pagination token into a Paginator.
func DecodePageToken(encodedToken string) (*Paginator, error) {
	if encodedToken == "" {
		return nil, fmt.Errorf("empty token: %w", ErrInvalidPaginationToken)
	}
	bytes, err := base64.StdEncoding.DecodeString(encodedToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 token: %w", err)
	}
	tokenParts := strings.Split(string(bytes), ",")
	expectedTokenParts := 2
	if len(tokenParts) != expectedTokenParts || tokenParts[0] != tokenPrefix {
		return nil, fmt.Errorf("invalid token format: %w", ErrInvalidPaginationToken)
	}

	id, err := strconv.Atoi(tokenParts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse token ID: %w", errors.Join(ErrInvalidPaginationToken, err))
	}
	if id <= 0 {
		return nil, fmt.Errorf("token ID must be positive: %w", ErrInvalidPaginationToken)
	}

	return &Paginator{LastID: id}, nil
}
