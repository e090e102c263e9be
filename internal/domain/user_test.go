package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRoleHelpers(t *testing.T) {
	var nobody *User
	assert.False(t, nobody.IsTeacher())
	assert.False(t, nobody.IsStudent())

	teacher := &User{Role: RoleTeacher}
	assert.True(t, teacher.IsTeacher())
	assert.False(t, teacher.IsStudent())

	student := &User{Role: RoleStudent}
	assert.True(t, student.IsStudent())
}
