package wcwidth_test

import (
	"fmt"

	"github.com/elves/wcwidth/pkg/wcwidth"
)

func ExampleOfCodepoint() {
	fmt.Println(wcwidth.OfCodepoint('a'))
	fmt.Println(wcwidth.OfCodepoint(0x301))
	fmt.Println(wcwidth.OfCodepoint(0xAC00))
	fmt.Println(wcwidth.OfCodepoint(0x1B))
	// Output:
	// 1
	// 0
	// 2
	// -1
}

func ExampleLength() {
	// U+1F600 is encoded as a surrogate pair, each half counting as one column.
	fmt.Println(wcwidth.Length("a\U0001F600"))
	fmt.Println(wcwidth.Of("a\U0001F600"))
	// Output:
	// 3
	// 2
}

func ExampleTrim() {
	fmt.Printf("%q\n", wcwidth.Trim("你好吗", 5))
	fmt.Printf("%q\n", wcwidth.Force("你", 4))
	// Output:
	// "你好"
	// "你  "
}
