// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package validation

import (
	"strings"
	"sync"
	"testing"
)

type recommendRequest struct {
	Mode  string `query:"mode" validate:"recmode"`
	Title string `query:"title" validate:"movietitle,max=20"`
}

type pageRequest struct {
	Limit  int    `json:"limit" validate:"min=1,max=100"`
	Format string `json:"format" validate:"omitempty,oneof=json csv"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	results := make(chan interface{}, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- GetValidator()
		}()
	}
	wg.Wait()
	close(results)

	first := GetValidator()
	for v := range results {
		if v != first {
			t.Error("GetValidator() should return the same instance")
		}
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	if err := ValidateStruct(&recommendRequest{Mode: "genre", Title: "Inception"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateStruct(&pageRequest{Limit: 10}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "bad mode",
			req:       &recommendRequest{Mode: "plot", Title: "Heat"},
			wantField: "mode", wantTag: "recmode",
			wantMsg: "mode must be one of: title, genre, actor",
		},
		{
			name:      "blank title",
			req:       &recommendRequest{Mode: "title", Title: "   "},
			wantField: "title", wantTag: "movietitle",
			wantMsg: "title must be a non-blank movie title without control characters",
		},
		{
			name:      "control character",
			req:       &recommendRequest{Mode: "title", Title: "Heat\x00"},
			wantField: "title", wantTag: "movietitle",
		},
		{
			name:      "title too long",
			req:       &recommendRequest{Mode: "title", Title: strings.Repeat("x", 21)},
			wantField: "title", wantTag: "max",
			wantMsg: "title must be at most 20 characters",
		},
		{
			name:      "limit too small",
			req:       &pageRequest{Limit: 0},
			wantField: "limit", wantTag: "min",
			wantMsg: "limit must be at least 1",
		},
		{
			name:      "oneof",
			req:       &pageRequest{Limit: 1, Format: "xml"},
			wantField: "format", wantTag: "oneof",
			wantMsg: "format must be one of: json csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(tt.req)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("got field=%q tag=%q, want %q %q", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}

			apiErr := verr.ToAPIError()
			if apiErr.Code != "VALIDATION_ERROR" {
				t.Errorf("Code = %q", apiErr.Code)
			}
			if apiErr.Details["field"] != tt.wantField {
				t.Errorf("Details[field] = %v", apiErr.Details["field"])
			}
		})
	}
}

func TestToAPIError_MultipleFields(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&recommendRequest{Mode: "", Title: ""})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %#v, want 2 entries", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "mode") || !strings.Contains(apiErr.Message, "title") {
		t.Errorf("Message = %q, want both fields", apiErr.Message)
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	var verr RequestValidationError
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if verr.ToAPIError().Message != "Validation failed" {
		t.Errorf("ToAPIError().Message = %q", verr.ToAPIError().Message)
	}
}
