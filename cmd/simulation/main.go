package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type client struct {
	baseURL  string
	deviceID string
	http     *http.Client
}

func (c *client) send(method, path, contentType string, body io.Reader) (*envelope, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Device-ID", c.deviceID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s %s (status %d): %w", method, path, resp.StatusCode, err)
	}
	if !env.Success {
		return &env, fmt.Errorf("%s %s: %d %s", method, path, env.Code, env.Message)
	}
	return &env, nil
}

func (c *client) sendJSON(method, path string, body interface{}) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}
	return c.send(method, path, "application/json", reader)
}

func (c *client) upload(fileName string) (*envelope, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(fileName)))
	header.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte("%PDF-1.4\n%simulated\n")); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return c.send(http.MethodPost, "/api/analysis?wait=true", w.FormDataContentType(), &buf)
}

func prettyPrint(raw json.RawMessage) {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(out.String())
}

func must(env *envelope, err error) *envelope {
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("%d %s", env.Code, env.Message)
	return env
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "server base URL")
	email := flag.String("email", "demo@plagiarismpro.test", "login email")
	fileName := flag.String("file", "paper.pdf", "name of the PDF to submit")
	flag.Parse()

	c := &client{
		baseURL:  *baseURL,
		deviceID: uuid.NewString(),
		http:     &http.Client{Timeout: 60 * time.Second},
	}

	color.Cyan("PlagiarismPro simulation client (device %s)\n", c.deviceID)

	color.Yellow("\n1. Login")
	must(c.sendJSON(http.MethodPost, "/api/auth/login", map[string]string{"email": *email, "password": "simulated"}))

	color.Yellow("\n2. Upload %s and wait for the analysis", *fileName)
	start := time.Now()
	env := must(c.upload(*fileName))
	color.Green("Finished in %v", time.Since(start).Round(time.Millisecond))

	var job struct {
		Entry struct {
			Id int64 `json:"id"`
		} `json:"entry"`
	}
	if err := json.Unmarshal(env.Data, &job); err != nil {
		color.Red("Unexpected job payload: %v", err)
		os.Exit(1)
	}

	color.Yellow("\n3. Result views")
	prettyPrint(must(c.sendJSON(http.MethodGet, fmt.Sprintf("/api/history/%d/views", job.Entry.Id), nil)).Data)

	color.Yellow("\n4. History and stats")
	prettyPrint(must(c.sendJSON(http.MethodGet, "/api/history", nil)).Data)

	color.Yellow("\n5. Email the report")
	prettyPrint(must(c.sendJSON(http.MethodPost, fmt.Sprintf("/api/reports/%d/email", job.Entry.Id), map[string]string{})).Data)

	color.Cyan("\nDone.")
}
