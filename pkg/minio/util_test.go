package minio

import (
	"strings"
	"testing"
	"time"

	"portal-srv/config"
)

func TestValidateConfig(t *testing.T) {
	t.Run("complete config without bucket passes", func(t *testing.T) {
		cfg := &config.MinIOConfig{
			Endpoint:  "minio.local:9000",
			AccessKey: "portal",
			SecretKey: "secret",
			Region:    "us-east-1",
		}
		if err := validateConfig(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing endpoint rejected", func(t *testing.T) {
		cfg := &config.MinIOConfig{AccessKey: "portal", SecretKey: "secret", Region: "us-east-1"}
		if err := validateConfig(cfg); err == nil {
			t.Fatal("expected error for missing endpoint")
		}
	})

	t.Run("bare endpoint gets default port", func(t *testing.T) {
		cfg := &config.MinIOConfig{
			Endpoint:  "minio.local",
			AccessKey: "portal",
			SecretKey: "secret",
			Region:    "us-east-1",
		}
		if err := validateConfig(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(cfg.Endpoint, ":") {
			t.Errorf("endpoint %q should carry the default port", cfg.Endpoint)
		}
	})
}

func TestValidatePresignedURLRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := &PresignedURLRequest{
			BucketName: "portal-reports",
			ObjectName: "P100/cbc.pdf",
			Expiry:     60 * time.Second,
		}
		if err := validatePresignedURLRequest(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero expiry rejected", func(t *testing.T) {
		req := &PresignedURLRequest{
			BucketName: "portal-reports",
			ObjectName: "P100/cbc.pdf",
		}
		if err := validatePresignedURLRequest(req); err == nil {
			t.Fatal("expected error for zero expiry")
		}
	})

	t.Run("expiry over 7 days rejected", func(t *testing.T) {
		req := &PresignedURLRequest{
			BucketName: "portal-reports",
			ObjectName: "P100/cbc.pdf",
			Expiry:     8 * 24 * time.Hour,
		}
		if err := validatePresignedURLRequest(req); err == nil {
			t.Fatal("expected error for expiry over limit")
		}
	})
}

func TestValidateBucketName(t *testing.T) {
	cases := []struct {
		name    string
		bucket  string
		wantErr bool
	}{
		{"valid", "portal-reports", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"uppercase", "Portal", true},
		{"double hyphen", "portal--reports", true},
		{"leading hyphen", "-portal", true},
		{"too long", strings.Repeat("a", 64), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBucketName(tc.bucket)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateBucketName(%q) error = %v, wantErr %v", tc.bucket, err, tc.wantErr)
			}
		})
	}
}

func TestNormalizeUserMetadata(t *testing.T) {
	raw := map[string]string{
		"X-Amz-Meta-Department":     "LAB",
		"X-Amz-Meta-Sub-Department": "Hematology",
	}
	got := normalizeUserMetadata(raw)
	if got["Department"] != "LAB" {
		t.Errorf("Department = %q, want LAB", got["Department"])
	}
	if got["Sub-Department"] != "Hematology" {
		t.Errorf("Sub-Department = %q, want Hematology", got["Sub-Department"])
	}
	if normalizeUserMetadata(nil) != nil {
		t.Error("nil input should return nil")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NewObjectNotFoundError("x")) {
		t.Error("object-not-found should be IsNotFound")
	}
	if !IsNotFound(NewBucketNotFoundError("b")) {
		t.Error("bucket-not-found should be IsNotFound")
	}
	if IsNotFound(NewInvalidInputError("bad")) {
		t.Error("invalid input should not be IsNotFound")
	}
}
