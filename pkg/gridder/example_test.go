package gridder_test

import (
	"fmt"

	"github.com/jknapka/Gridder/pkg/gridder"
)

func ExampleParseLayout() {
	layout := "{header +      +    }" +
		"{nav    body:fxy +  }" +
		"{|      footer   +  }"

	reg, err := gridder.ParseLayout(layout)
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	for _, r := range reg.Regions() {
		fmt.Printf("%s at (%d,%d) %dx%d\n", r.Name, r.Row, r.Col, r.Width, r.Height)
	}
	// Output:
	// header at (0,0) 3x1
	// nav at (1,0) 1x2
	// body at (1,1) 2x1
	// footer at (2,1) 2x1
}

func ExampleSplitEmbedded() {
	canonical, err := gridder.SplitEmbedded("wx1,wy2,i*5,fxy")
	if err != nil {
		fmt.Println("split failed:", err)
		return
	}
	fmt.Println(canonical)
	// Output:
	// wx 1 wy 2 i* 5 f xy
}

func ExampleGridder_Place() {
	g, err := gridder.New("weightx 1.0", "anchor center")
	if err != nil {
		fmt.Println("bad defaults:", err)
		return
	}
	if err := g.ParseLayout("{name field +}"); err != nil {
		fmt.Println("bad layout:", err)
		return
	}

	p, err := g.Place("field", "fill horizontal")
	if err != nil {
		fmt.Println("place failed:", err)
		return
	}
	fmt.Printf("row=%d col=%d width=%d fill=%s\n",
		p.Row, p.Col, p.Constraints.GridWidth, p.Constraints.Fill)
	// Output:
	// row=0 col=1 width=2 fill=horizontal
}
