package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/zoo-mahjong/internal/apperror"
)

// Animal is a tile label. The zero value marks an empty cell.
type Animal string

const (
	Lion     Animal = "Lion"
	Monkey   Animal = "Monkey"
	Elephant Animal = "Elephant"
	Giraffe  Animal = "Giraffe"
	Tiger    Animal = "Tiger"

	NoAnimal Animal = ""
)

// Animals is the fixed tile set, in draw order.
var Animals = []Animal{Lion, Monkey, Elephant, Giraffe, Tiger}

func (that Animal) IsValid() bool {
	for _, animal := range Animals {
		if animal == that {
			return true
		}
	}
	return false
}

// Initial is the one-letter board symbol, "." for an empty cell.
func (that Animal) Initial() string {
	if that == NoAnimal {
		return "."
	}
	return string(that[0])
}

func ParseAnimal(name string) (Animal, error) {
	animal := Animal(name)
	if !animal.IsValid() {
		return NoAnimal, fmt.Errorf("%w: %q", apperror.ErrUnknownAnimal, name)
	}
	return animal, nil
}

// UnmarshalJSON rejects names outside the tile set, so a damaged snapshot never
// loads. The empty string stays an empty cell.
func (that *Animal) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("failed to decode animal: %w", err)
	}

	if name == "" {
		*that = NoAnimal
		return nil
	}

	animal, err := ParseAnimal(name)
	if err != nil {
		return err
	}

	*that = animal
	return nil
}
