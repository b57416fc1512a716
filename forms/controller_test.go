package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-admin/forms"
)

func TestControllerSetFieldAndReset(t *testing.T) {
	f := forms.NewController(forms.Fields{"nombre": "Ana"}, nil)

	f.SetField("nombre", "Ana Maria")
	assert.Equal(t, "Ana Maria", f.Values()["nombre"])

	f.Reset()
	assert.Equal(t, "Ana", f.Values()["nombre"])
	assert.Empty(t, f.Errors())
}

func TestControllerHandleChangeIsShallowMerge(t *testing.T) {
	f := forms.NewController(forms.Fields{"nombre": "Ana", "apellido": "Lopez"}, nil)

	f.HandleChange(forms.ChangeEvent{Name: "apellido", Value: "Gomez"})
	f.HandleChange(forms.ChangeEvent{Name: "dni", Value: "123"})

	assert.Equal(t, forms.Fields{"nombre": "Ana", "apellido": "Gomez", "dni": "123"}, f.Values())
}

func TestControllerSequentialChangesUseLatestState(t *testing.T) {
	f := forms.NewController(forms.Fields{}, nil)

	for _, ev := range []forms.ChangeEvent{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}, {Name: "a", Value: "3"}} {
		f.HandleChange(ev)
	}

	assert.Equal(t, forms.Fields{"a": "3", "b": "2"}, f.Values())
}

func TestControllerSnapshotsAreNotMutated(t *testing.T) {
	initial := forms.Fields{"nombre": "Ana"}
	f := forms.NewController(initial, nil)

	before := f.Values()
	f.SetField("nombre", "Luz")

	assert.Equal(t, "Ana", before["nombre"])
	assert.Equal(t, "Luz", f.Values()["nombre"])

	initial["nombre"] = "changed by caller"
	f.Reset()
	assert.Equal(t, "Ana", f.Values()["nombre"])
}

func TestControllerValidate(t *testing.T) {
	requireName := func(v forms.Fields) forms.Errors {
		if v["nombre"] == "" {
			return forms.Errors{"nombre": "required"}
		}
		return nil
	}
	f := forms.NewController(forms.Fields{"nombre": ""}, requireName)

	assert.False(t, f.Validate())
	assert.Equal(t, forms.Errors{"nombre": "required"}, f.Errors())

	f.SetField("nombre", "Ana")
	assert.True(t, f.Validate())
	assert.Empty(t, f.Errors())

	f.SetField("nombre", "")
	f.Validate()
	f.Reset()
	assert.Empty(t, f.Errors())
}

func TestControllerWithoutValidatorAlwaysValid(t *testing.T) {
	f := forms.NewController(nil, nil)

	assert.True(t, f.Validate())
	assert.Empty(t, f.Errors())
	assert.NotNil(t, f.Values())
}
