package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeLink(t *testing.T) {
	got := badgeLink("http://localhost:8080", 7)
	assert.Equal(t, "http://localhost:8080/api/admin/users/7", got)
}
