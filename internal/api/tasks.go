package api

import "fmt"

// GetTasks returns every task belonging to the current user.
func (c *Client) GetTasks() ([]Task, error) {
	tasks := make([]Task, 0)
	if err := c.Get("/tasks", &tasks); err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a new task. The server assigns the ID and createdAt.
func (c *Client) CreateTask(req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.Post("/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask replaces an existing task with the given payload.
func (c *Client) UpdateTask(id string, req UpdateTaskRequest) (*Task, error) {
	var task Task
	if err := c.Put("/tasks/"+id, req, &task); err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return &task, nil
}

// ToggleTask updates a task with every field unchanged except completed,
// which is inverted. There is no dedicated toggle endpoint.
func (c *Client) ToggleTask(task Task) (*Task, error) {
	req := UpdateFrom(task)
	req.Completed = !task.Completed
	return c.UpdateTask(task.ID, req)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(id string) error {
	if err := c.Delete("/tasks/" + id); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}
