package solid_test

import (
	"fmt"
	"os"

	"github.com/b97tsk/primer/solid"
)

func ExampleReport() {
	var f solid.TextFormatter
	doc := f.Format(solid.Report{
		Title: "Outages",
		Lines: []string{"api down 2m", "db failover"},
	})
	fmt.Print(doc)

	var store solid.MemoryStore
	store.Save(doc)
	fmt.Println("stored:", store.Count())

	// Output:
	// Outages
	// =======
	// - api down 2m
	// - db failover
	// stored: 1
}

func ExampleTotalArea() {
	total := solid.TotalArea(
		&solid.Rect{W: 3, H: 4},
		solid.Circle{R: 1},
		solid.Square{Side: 2},
	)
	fmt.Printf("%.2f\n", total)

	// Output:
	// 19.14
}

func ExampleWiden() {
	r := &solid.Rect{W: 2, H: 5}
	solid.Widen(r, 3)
	fmt.Println(r.W, r.H)

	sq := solid.Square{Side: 2}.Scale(1.5)
	fmt.Println(sq.Side)

	// Output:
	// 5 5
	// 3
}

func ExamplePhotocopier() {
	var pc solid.Photocopier
	fmt.Println(pc.Copy())

	// Output:
	// printed: scanned: 1 page
}

func ExampleNotifier() {
	n, err := solid.NewNotifier(solid.ConsoleSender{W: os.Stdout})
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := n.Alert("ada", "disk almost full"); err != nil {
		fmt.Println(err)
	}

	// Output:
	// to ada: alert: disk almost full
}
