package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/harlamovads/Graph-description-training/internal/domain"
)

var idCounter atomic.Int64

func nextID() int { return int(idCounter.Add(1)) }

// NewTeacher creates a teacher user fixture.
func NewTeacher(username string) *domain.User {
	id := nextID()
	return &domain.User{
		ID:       id,
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Role:     domain.RoleTeacher,
	}
}

// NewStudent creates a student user fixture.
func NewStudent(username string) *domain.User {
	id := nextID()
	return &domain.User{
		ID:       id,
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Role:     domain.RoleStudent,
	}
}

// NewTask creates a task fixture.
func NewTask(title string) *domain.Task {
	return &domain.Task{
		ID:          nextID(),
		Title:       title,
		Description: "Describe the chart in at least 150 words.",
	}
}

// NewExercise creates a published exercise with n sentences. Sentence
// IDs start at 1.
func NewExercise(title string, n int) *domain.Exercise {
	ex := &domain.Exercise{
		ID:           nextID(),
		Title:        title,
		Instructions: "Correct each sentence.",
		Status:       domain.ExercisePublished,
	}
	for i := 1; i <= n; i++ {
		source := domain.SourceDatabase
		if i == 1 {
			source = domain.SourceOriginal
		}
		ex.Sentences = append(ex.Sentences, domain.Sentence{
			ID:         i,
			Content:    fmt.Sprintf("The graph show trend %d.", i),
			Source:     source,
			ErrorTypes: []string{"VERB:SVA"},
		})
	}
	return ex
}

// Token returns a signed JWT whose expiry claim lies at exp. The
// signing key is arbitrary; the client never verifies signatures.
func Token(exp time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("testutil-secret"))
	if err != nil {
		panic(err)
	}
	return token
}
