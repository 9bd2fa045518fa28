package object

// A Speaker is anything able to introduce itself. Interfaces in Go are
// satisfied implicitly; none of the types below declare that they
// implement Speaker, they simply do.
type Speaker interface {
	Speak() string
}

// An Animal carries the behavior shared by all animals. Other types
// embed it rather than inherit from it.
type Animal struct {
	Name  string
	Sound string
}

// Speak introduces the animal.
func (a Animal) Speak() string {
	return a.Name + " says " + a.Sound
}

// A Dog is an Animal with its own bark and an extra trick.
type Dog struct {
	Animal
}

// NewDog names a dog. The sound is fixed; dogs are not configurable.
func NewDog(name string) Dog {
	return Dog{Animal{Name: name, Sound: "woof"}}
}

// Speak shadows the embedded method and calls back into it, the
// closest Go gets to an override invoking its base.
func (d Dog) Speak() string {
	return d.Animal.Speak() + "!"
}

// Fetch exists on Dog alone.
func (d Dog) Fetch(item string) string {
	return d.Name + " fetches the " + item
}

// A Cat is an Animal that keeps the shared behavior as is.
type Cat struct {
	Animal
}

// NewCat names a cat.
func NewCat(name string) Cat {
	return Cat{Animal{Name: name, Sound: "meow"}}
}

// A Robot is no Animal at all, yet it satisfies Speaker all the same.
type Robot struct {
	ID string
}

func (r Robot) Speak() string {
	return r.ID + " says beep"
}

// Chorus collects one line from every speaker, whatever it is.
func Chorus(speakers ...Speaker) []string {
	lines := make([]string, 0, len(speakers))
	for _, s := range speakers {
		lines = append(lines, s.Speak())
	}
	return lines
}
