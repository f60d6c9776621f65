// Package api is a thin HTTP client for the ListKeeper server, used by the
// CLI. Every call sends the bearer token and decodes the JSON response.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"listkeeper/internal/shared/models"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{baseURL: baseURL, token: token, http: http.DefaultClient}
}

func (c *Client) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s (%s)", method, path, apiErr.Message, resp.Status)
		}
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Todos

func (c *Client) ListTodos() ([]models.Todo, error) {
	var out []models.Todo
	err := c.do(http.MethodGet, "/todos", nil, &out)
	return out, err
}

func (c *Client) GetTodo(id string) (models.Todo, error) {
	var out models.Todo
	err := c.do(http.MethodGet, "/todos/"+id, nil, &out)
	return out, err
}

func (c *Client) CreateTodo(title string) (models.Todo, error) {
	var out models.Todo
	err := c.do(http.MethodPost, "/todos", map[string]string{"title": title}, &out)
	return out, err
}

func (c *Client) UpdateTodo(id string, patch models.TodoPatch) (models.Todo, error) {
	var out models.Todo
	err := c.do(http.MethodPut, "/todos/"+id, patch, &out)
	return out, err
}

func (c *Client) DeleteTodo(id string) error {
	return c.do(http.MethodDelete, "/todos/"+id, nil, nil)
}

// Notes

func (c *Client) ListNotes() ([]models.Note, error) {
	var out []models.Note
	err := c.do(http.MethodGet, "/notes", nil, &out)
	return out, err
}

func (c *Client) GetNote(id string) (models.Note, error) {
	var out models.Note
	err := c.do(http.MethodGet, "/notes/"+id, nil, &out)
	return out, err
}

func (c *Client) CreateNote(content string) (models.Note, error) {
	var out models.Note
	err := c.do(http.MethodPost, "/notes", map[string]string{"content": content}, &out)
	return out, err
}

func (c *Client) UpdateNote(id string, patch models.NotePatch) (models.Note, error) {
	var out models.Note
	err := c.do(http.MethodPut, "/notes/"+id, patch, &out)
	return out, err
}

func (c *Client) DeleteNote(id string) error {
	return c.do(http.MethodDelete, "/notes/"+id, nil, nil)
}
