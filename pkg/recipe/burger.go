package recipe

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/burger/pkg/logger"
	"github.com/dmitrymomot/burger/pkg/validator"
)

// DefinitionNotice is logged once per process, the first time the Burger
// type is used.
const DefinitionNotice = "burger will be created"

var (
	bunsField     = validator.Bind("buns", validator.NewRangeRule(2, 3))
	cheeseField   = validator.Bind("cheese", validator.NewRangeRule(0, 2))
	tomatoesField = validator.Bind("tomatoes", validator.NewRangeRule(0, 3))
	cutletsField  = validator.Bind("cutlets", validator.NewRangeRule(1, 3))
	eggsField     = validator.Bind("eggs", validator.NewRangeRule(0, 2))
	sauceField    = validator.Bind("sauce", validator.OneOf("ketchup", "mayo", "burger"))

	// construction order
	fields = []*validator.Field{
		bunsField,
		cheeseField,
		tomatoesField,
		cutletsField,
		eggsField,
		sauceField,
	}

	fieldsByName = func() map[string]*validator.Field {
		m := make(map[string]*validator.Field, len(fields))
		for _, f := range fields {
			m[f.Name()] = f
		}
		return m
	}()

	definition sync.Once
)

func announce() {
	definition.Do(func() {
		slog.Info(DefinitionNotice, logger.Component("recipe"))
	})
}

// Burger is a recipe whose ingredient quantities are checked on every write.
// The zero value has no fields set; use New to build a complete recipe.
type Burger struct {
	id    uuid.UUID
	slots validator.Slots
}

// New assigns all six fields in order and stops at the first rejected value.
// The returned error is a validator.ValidationErrors naming the field.
func New(buns, cheese, tomatoes, cutlets, eggs, sauce any) (*Burger, error) {
	announce()

	b := &Burger{id: uuid.New()}
	values := []any{buns, cheese, tomatoes, cutlets, eggs, sauce}
	for i, f := range fields {
		if err := b.set(f, values[i]); err != nil {
			return nil, err
		}
	}

	slog.Debug("burger created", slog.Any("burger", b))
	return b, nil
}

// Fields returns the field names in construction order.
func Fields() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}
	return names
}

// Rule returns the rule bound to the named field.
func Rule(name string) (validator.Validator, bool) {
	f, ok := fieldsByName[name]
	if !ok {
		return nil, false
	}
	return f.Rule(), true
}

// Sauces returns the allowed sauces in declaration order.
func Sauces() []string {
	return sauceField.Rule().(*validator.MembershipRule).Options()
}

func (b *Burger) ID() uuid.UUID { return b.id }

func (b *Burger) Buns() (int, error)     { return validator.GetAs[int](bunsField, &b.slots) }
func (b *Burger) Cheese() (int, error)   { return validator.GetAs[int](cheeseField, &b.slots) }
func (b *Burger) Tomatoes() (int, error) { return validator.GetAs[int](tomatoesField, &b.slots) }
func (b *Burger) Cutlets() (int, error)  { return validator.GetAs[int](cutletsField, &b.slots) }
func (b *Burger) Eggs() (int, error)     { return validator.GetAs[int](eggsField, &b.slots) }
func (b *Burger) Sauce() (string, error) { return validator.GetAs[string](sauceField, &b.slots) }

// Get returns the current value of the named field.
func (b *Burger) Get(name string) (any, error) {
	f, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Get(&b.slots)
}

// Set validates and stores a value for the named field.
// On rejection the previous value stays in place.
func (b *Burger) Set(name string, value any) error {
	f, err := lookup(name)
	if err != nil {
		return err
	}
	announce()
	return b.set(f, value)
}

func (b *Burger) set(f *validator.Field, value any) error {
	if err := f.Set(&b.slots, value); err != nil {
		slog.Debug("burger field rejected",
			logger.RecipeID(b.id),
			logger.Field(f.Name()),
			logger.Value(value),
			logger.Error(err),
		)
		return err
	}
	return nil
}

func lookup(name string) (*validator.Field, error) {
	f, ok := fieldsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", validator.ErrUnknownField, name)
	}
	return f, nil
}

// String renders the recipe as "buns=2 cheese=1 ... sauce=mayo";
// unset fields are shown as "-".
func (b *Burger) String() string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		v, err := f.Get(&b.slots)
		if err != nil {
			parts = append(parts, f.Name()+"=-")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", f.Name(), v))
	}
	return strings.Join(parts, " ")
}

// LogValue implements slog.LogValuer.
func (b *Burger) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(fields)+1)
	attrs = append(attrs, slog.String("id", b.id.String()))
	for _, f := range fields {
		if v, err := f.Get(&b.slots); err == nil {
			attrs = append(attrs, slog.Any(f.Name(), v))
		}
	}
	return slog.GroupValue(attrs...)
}
