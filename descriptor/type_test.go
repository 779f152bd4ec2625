package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	pet := Object("Pet",
		F("id", Int64()),
		F("name", String()),
		Opt("tag", String()),
	)
	assert.Equal(t, KindObject, pet.Kind)
	assert.Equal(t, "Pet", pet.Name)
	assert.Len(t, pet.Fields, 3)
	assert.False(t, pet.Fields[0].Optional)
	assert.True(t, pet.Fields[2].Optional)

	status := Enum("Status", "available", "sold")
	assert.Equal(t, KindEnum, status.Kind)
	assert.Equal(t, []string{"available", "sold"}, status.Variants)

	pets := Array(NamedRef("Pet"))
	assert.Equal(t, KindArray, pets.Kind)
	assert.Equal(t, KindRef, pets.Items.Kind)

	assert.Equal(t, KindAny, Any().Kind)
}

func TestWithDescription(t *testing.T) {
	base := String()
	described := base.WithDescription("a label")
	assert.Empty(t, base.Description)
	assert.Equal(t, "a label", described.Description)
	assert.Equal(t, base.Kind, described.Kind)
}
