package detect

import (
	"context"
	"encoding/base64"
	"image"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testFrame() *image.RGBA { return image.NewRGBA(image.Rect(0, 0, 8, 8)) }

func TestRoboflowClient_ParsesPredictions(t *testing.T) {
	var gotPath, gotKey string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"predictions":[
			{"x":450,"y":800,"width":40,"height":40,"confidence":0.91,"class":"allied-giant"},
			{"x":100,"y":100,"width":20,"height":20,"confidence":0.20,"class":"enemy-knight"}
		]}`)
	}))
	defer srv.Close()

	c := NewRoboflowClient("troop-counter/7", "test-key", 0.40, nil)
	c.SetEndpoint(srv.URL)

	dets, err := c.Detect(context.Background(), testFrame())
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/troop-counter/7" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key = %q", gotKey)
	}
	if _, err := base64.StdEncoding.DecodeString(string(gotBody)); err != nil {
		t.Fatalf("body is not base64: %v", err)
	}
	// The low-confidence prediction is dropped by the floor.
	if len(dets) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(dets))
	}
	d := dets[0]
	if d.Class != "allied-giant" {
		t.Fatalf("class = %q", d.Class)
	}
	if d.X1 != 430 || d.Y1 != 780 || d.X2 != 470 || d.Y2 != 820 {
		t.Fatalf("bbox = (%v,%v,%v,%v)", d.X1, d.Y1, d.X2, d.Y2)
	}
}

func TestRoboflowClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad model", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewRoboflowClient("troop-counter/7", "test-key", 0, nil)
	c.SetEndpoint(srv.URL)
	if _, err := c.Detect(context.Background(), testFrame()); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestRoboflowClient_MissingKey(t *testing.T) {
	t.Setenv("ROBOFLOW_API_KEY", "")
	c := NewRoboflowClient("troop-counter/7", "", 0, nil)
	if _, err := c.Detect(context.Background(), testFrame()); err == nil {
		t.Fatal("expected error without API key")
	}
}
