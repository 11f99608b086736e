package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNationality(t *testing.T) {
	assert.True(t, NationalityUSA.IsValid())
	assert.True(t, Nationality("Viet Nam").IsValid())
	assert.False(t, Nationality("Vietnam").IsValid())
	assert.False(t, Nationality("").IsValid())

	assert.Equal(t, NationalityUSA, Nationality("").OrDefault())
	assert.Equal(t, NationalityVietNam, NationalityVietNam.OrDefault())
}

func TestBaseModel_BeforeCreate(t *testing.T) {
	var d Driver
	assert.NoError(t, d.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, d.ID)

	id := uuid.New()
	c := Car{BaseModel: BaseModel{ID: id}}
	assert.NoError(t, c.BeforeCreate(nil))
	assert.Equal(t, id, c.GetID())
}

func TestBaseModel_Identifiable(t *testing.T) {
	var entity Identifiable = &Race{}
	id := uuid.New()
	entity.SetID(id)
	assert.Equal(t, id, entity.GetID())
}
