package uploads

import (
	"crypto/rand"
	"crypto/rsa"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestPublicURLDefaultsToStorageHost(t *testing.T) {
	c := &Client{bucket: "kickstore-media"}

	got := c.PublicURL("products/abc_jordan.jpg")
	want := "https://storage.googleapis.com/kickstore-media/products/abc_jordan.jpg"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}

	if got := c.PublicURL(""); got != "" {
		t.Fatalf("empty path should yield empty url, got %q", got)
	}
}

func TestPublicURLPrefersCDNBase(t *testing.T) {
	c := &Client{bucket: "kickstore-media", publicBaseURL: "https://cdn.kickstore.co"}

	got := c.PublicURL("/products/abc.png")
	if got != "https://cdn.kickstore.co/products/abc.png" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestSignUploadURLRequiresSigner(t *testing.T) {
	c := &Client{bucket: "kickstore-media"}

	if _, err := c.SignUploadURL("products/a.jpg", "image/jpeg", time.Minute); err == nil {
		t.Fatalf("expected error without service account credentials")
	}
}

func TestSignUploadURLRejectsBadExpiry(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	c := &Client{bucket: "kickstore-media", signerEmail: "svc@test.iam.gserviceaccount.com", signerKey: key}

	if _, err := c.SignUploadURL("products/a.jpg", "image/jpeg", 0); err == nil {
		t.Fatalf("expected error for zero expiry")
	}
	if _, err := c.SignUploadURL("products/a.jpg", "image/jpeg", 8*24*time.Hour); err == nil {
		t.Fatalf("expected error for expiry beyond the signing window")
	}
}

func TestSignUploadURLShape(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	c := &Client{bucket: "kickstore-media", signerEmail: "svc@test.iam.gserviceaccount.com", signerKey: key}

	signed, err := c.SignUploadURL("products/abc def.jpg", "image/jpeg", 15*time.Minute)
	if err != nil {
		t.Fatalf("sign upload url: %v", err)
	}

	parsed, err := url.Parse(signed)
	if err != nil {
		t.Fatalf("parse signed url: %v", err)
	}
	if parsed.Host != "storage.googleapis.com" {
		t.Fatalf("unexpected host %q", parsed.Host)
	}
	if !strings.HasPrefix(parsed.Path, "/kickstore-media/products/") {
		t.Fatalf("unexpected path %q", parsed.Path)
	}
	if strings.Contains(parsed.Path, " ") {
		t.Fatalf("object path should be escaped, got %q", parsed.Path)
	}

	q := parsed.Query()
	if q.Get("X-Goog-Algorithm") != "GOOG4-RSA-SHA256" {
		t.Fatalf("unexpected algorithm %q", q.Get("X-Goog-Algorithm"))
	}
	if q.Get("X-Goog-Expires") != "900" {
		t.Fatalf("unexpected expiry %q", q.Get("X-Goog-Expires"))
	}
	if !strings.Contains(q.Get("X-Goog-SignedHeaders"), "content-type") {
		t.Fatalf("content type should be part of signed headers, got %q", q.Get("X-Goog-SignedHeaders"))
	}
	if q.Get("X-Goog-Signature") == "" {
		t.Fatalf("missing signature")
	}
}

func TestEscapeObjectPathKeepsSegments(t *testing.T) {
	got := escapeObjectPath("products/air max 97/red.jpg")
	if got != "products/air%20max%2097/red.jpg" {
		t.Fatalf("unexpected escaped path %q", got)
	}
}
