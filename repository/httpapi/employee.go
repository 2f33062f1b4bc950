package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/presenza-app/presence-client-go/domain/employee"
)

type EmployeeRepository struct {
	client *Client
}

func NewEmployeeRepository(client *Client) *EmployeeRepository {
	return &EmployeeRepository{client: client}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := r.client.getJSON(ctx, "/users", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (employee.Employee, error) {
	var emp employee.Employee
	path := fmt.Sprintf("/users/%d", id)
	if err := r.client.getJSON(ctx, path, nil, &emp); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return employee.Employee{}, employee.ErrNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id int, req employee.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	path := fmt.Sprintf("/users/update/%d", id)
	err := r.client.doJSON(ctx, http.MethodPut, path, nil, req, nil)
	if err != nil && IsStatus(err, http.StatusNotFound) {
		return employee.ErrNotFound
	}
	return err
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/users/delete/%d", id)
	err := r.client.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
	if err != nil && IsStatus(err, http.StatusNotFound) {
		return employee.ErrNotFound
	}
	return err
}

func (r *EmployeeRepository) Submitted(ctx context.Context, year int, month time.Month) ([]employee.Employee, error) {
	path := fmt.Sprintf("/retrieve_submitted_presence/%d/%02d", year, int(month))
	var employees []employee.Employee
	if err := r.client.getJSON(ctx, path, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) Missing(ctx context.Context, year int, month time.Month) ([]employee.Employee, error) {
	path := fmt.Sprintf("/retrieve_not_submitted_presence/%d/%02d", year, int(month))
	var employees []employee.Employee
	if err := r.client.getJSON(ctx, path, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}
