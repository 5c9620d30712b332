// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-rest-kit/models"
)

func TestIdentityCtxKey(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
}

func TestIdentityFromContext(t *testing.T) {
	want := models.Identity{UserID: 42, Login: "ann"}
	ctx := WithIdentity(context.Background(), want)

	got, ok := IdentityFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{"authenticated", WithIdentity(context.Background(), models.Identity{UserID: 42}), 42, true},
		{"guest", WithIdentity(context.Background(), models.Identity{}), 0, false},
		{"missing", context.Background(), 0, false},
		{"wrong type", context.WithValue(context.Background(), IdentityCtxKey, "42"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.wantID, tt.wantOK, id, ok)
			}
		})
	}
}
