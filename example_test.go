package art

import "fmt"

func Example_basicUsage() {
	t := MakeTree()
	t.Insert(StringKey("Alice"), 1)
	t.Insert(StringKey("Bob"), 2)

	v, ok := t.Search(StringKey("Alice"))
	fmt.Println(v, ok)
	// Output:
	// 1 true
}

func Example_properPrefixKeys() {
	t := MakeTree()
	t.Insert([]byte("hello"), 12)
	t.Insert([]byte("hell"), 13)

	hell, _ := t.Search([]byte("hell"))
	hello, _ := t.Search([]byte("hello"))
	_, helFound := t.Search([]byte("hel"))
	fmt.Println(hell, hello, helFound)
	// Output:
	// 13 12 false
}
