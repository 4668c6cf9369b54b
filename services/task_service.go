package services

import (
	"errors"
	"fmt"
	"strings"

	"taskping/taskping/broker"
	"taskping/taskping/database"
	"taskping/taskping/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskServiceInterface interface {
	ListTasks(db *database.Database, userID uuid.UUID) ([]models.Task, error)
	PendingTasks(db *database.Database, userID uuid.UUID) ([]models.Task, error)
	AddTask(db *database.Database, userID uuid.UUID, title, note string) (models.Task, error)
	MarkDone(db *database.Database, userID uuid.UUID, taskID uint) (models.Task, error)
}

type TaskService struct{}

// ListTasks returns all of the user's tasks, most recent first.
func (s *TaskService) ListTasks(db *database.Database, userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	if err := db.DB.Where("user_id = ?", userID).Order("id DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// PendingTasks returns the user's not-done tasks in id order.
func (s *TaskService) PendingTasks(db *database.Database, userID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	if err := db.DB.Where("user_id = ? AND done = ?", userID, false).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) AddTask(db *database.Database, userID uuid.UUID, title, note string) (models.Task, error) {
	title = strings.TrimSpace(title)
	note = strings.TrimSpace(note)

	if title == "" {
		return models.Task{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	task := models.Task{
		UserID: userID,
		Title:  title,
		Note:   note,
	}

	if err := db.DB.Create(&task).Error; err != nil {
		return models.Task{}, err
	}

	broker.PublishEvent(broker.TaskEventsSubject, string(broker.TaskCreated), map[string]interface{}{
		"task_id": task.ID,
		"user_id": userID.String(),
		"title":   task.Title,
	})

	return task, nil
}

// MarkDone flips a task's done flag. Queries are scoped by owner, so another
// user's task id behaves exactly like a missing one. Marking an already done
// task again is a no-op success.
func (s *TaskService) MarkDone(db *database.Database, userID uuid.UUID, taskID uint) (models.Task, error) {
	var task models.Task
	if err := db.DB.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	if task.Done {
		return task, nil
	}

	if err := db.DB.Model(&task).Update("done", true).Error; err != nil {
		return models.Task{}, err
	}
	task.Done = true

	broker.PublishEvent(broker.TaskEventsSubject, string(broker.TaskCompleted), map[string]interface{}{
		"task_id": task.ID,
		"user_id": userID.String(),
	})

	return task, nil
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
