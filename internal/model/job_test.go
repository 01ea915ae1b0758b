package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEditableDefaultsActive(t *testing.T) {
	var j Job
	j.ApplyEditable(EditableJobInfo{Title: "Robotics Engineer"})
	assert.True(t, j.Active)
	assert.Equal(t, "Robotics Engineer", j.Title)
}

func TestApplyEditableExplicitActive(t *testing.T) {
	inactive := false
	var j Job
	j.ApplyEditable(EditableJobInfo{Title: "Filled Role", Active: &inactive})
	assert.False(t, j.Active)
}

func TestApplyEditableReplacesEveryField(t *testing.T) {
	j := Job{
		Title:        "Old title",
		Department:   "Old department",
		Location:     "Old location",
		Type:         "Old type",
		Description:  "Old description",
		Requirements: "Old requirements",
		Active:       false,
	}
	j.ApplyEditable(EditableJobInfo{Title: "New title"})

	assert.Equal(t, "New title", j.Title)
	assert.Equal(t, "", j.Department, "omitted fields are replaced, not kept")
	assert.Equal(t, "", j.Requirements)
	assert.True(t, j.Active)
}
