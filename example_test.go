package jsoncompare

import (
	"fmt"
)

func Example() {
	// start with two slightly different json documents
	left := []byte(`{
		"name": "gary",
		"age": 40,
		"names": [{"name": "gary"}, {"name": "brian"}]
	}`)

	right := []byte(`{
		"age": 40.0,
		"name": "gareth",
		"names": [{"name": "gary"}, {"name": "rebecca"}]
	}`)

	// Compare walks both documents & returns the ordered differences.
	// key order & numeric formatting don't count as differences
	res, err := Compare(left, right)
	if err != nil {
		panic(err)
	}

	fmt.Println(res.String())
	// Output:
	// Path 'name' value mismatch: "gary" != "gareth"
	// Path 'names[1].name' value mismatch: "brian" != "rebecca"
}

func ExampleComparer_ignorePaths() {
	// exclusion patterns elide array indices: "names.name" covers every
	// element of the "names" array
	c := New(WithIgnorePaths("names.name"))

	eq, err := c.Equal(
		[]byte(`{"names":[{"name":"gary"},{"name":"brian"}]}`),
		[]byte(`{"names":[{"name":"gary"},{"name":"rebecca"}]}`),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(eq)
	// Output: true
}

func ExampleComparer_Hash() {
	// equal documents hash equal, regardless of key order
	h1, err := Hash([]byte(`{"a":1,"b":2}`))
	if err != nil {
		panic(err)
	}
	h2, err := Hash([]byte(`{"b":2.0,"a":1}`))
	if err != nil {
		panic(err)
	}

	fmt.Println(h1 == h2)
	// Output: true
}
