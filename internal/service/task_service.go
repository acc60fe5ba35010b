package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "taskriser/internal/errors"
	"taskriser/internal/model"
	"taskriser/internal/repository"
)

// CreateTaskInput carries the fields accepted at task creation. The
// experience reward is derived from Difficulty here and nowhere else.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Difficulty  string
	Priority    string
	DueDate     *model.Date
}

// TaskService exposes task operations scoped to the owning user.
type TaskService interface {
	List(ctx context.Context, userID uint) ([]model.Task, error)
	Create(ctx context.Context, userID uint, input *CreateTaskInput) (*model.Task, error)
	Update(ctx context.Context, userID, taskID uint, update *model.TaskUpdate) (*model.Task, error)
	Delete(ctx context.Context, userID, taskID uint) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService builds a TaskService.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

// List returns the caller's tasks newest first.
func (s *taskService) List(ctx context.Context, userID uint) ([]model.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create persists a task owned by the caller. The reward lookup runs on the
// declared difficulty before defaults kick in, so an absent or unrecognized
// tier yields reward 0 while the stored difficulty still defaults to E-Rank.
func (s *taskService) Create(ctx context.Context, userID uint, input *CreateTaskInput) (*model.Task, error) {
	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Difficulty:  input.Difficulty,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		UserID:      userID,
		ExpReward:   model.ExpRewardFor(input.Difficulty),
	}
	if task.Status == "" {
		task.Status = "Pending"
	}
	if task.Difficulty == "" {
		task.Difficulty = model.DifficultyE
	}
	if task.Priority == "" {
		task.Priority = "Medium"
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update applies the present fields to the caller's task. Editing the
// difficulty does not recompute the experience reward.
func (s *taskService) Update(ctx context.Context, userID, taskID uint, update *model.TaskUpdate) (*model.Task, error) {
	task, err := s.findTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	update.Apply(task)
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes the caller's task.
func (s *taskService) Delete(ctx context.Context, userID, taskID uint) error {
	task, err := s.findTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, task); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (s *taskService) findTask(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	task, err := s.repo.FindByIDAndOwner(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}
