package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ttn-nguyen42/chains/data"
)

// sequence is what the demo needs from either list variant.
type sequence interface {
	Push(value int)
	Unshift(value int)
	Set(value int, index int) bool
	Insert(value int, index int) bool
	Len() int
	Reverse()
	HasLoop() bool
	IsPalindrome() bool
	RemoveDuplicates() int
	BinaryToDecimal() (int, error)
	PartitionList(x float64)
	ReverseBetween(m, n int) bool
	SwapPairs()
	String() string
}

// list adds the node returning operations, flattened to values.
type list struct {
	sequence
	pop    func() (int, bool)
	shift  func() (int, bool)
	get    func(index int) (int, bool)
	remove func(index int) (int, bool)
	middle func() (int, bool)
}

func main() {
	values, variant, err := getOptions()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	newList := func(values ...int) *list {
		return build(variant, values...)
	}
	if err := run(newList, values); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func getOptions() ([]int, string, error) {
	var raw string
	flag.StringVar(&raw, "values", "1,2,3,4,5,6", "Comma separated integers to start from")

	var variant string
	flag.StringVar(&variant, "variant", "doubly", "List variant to use: doubly or singly")

	flag.Parse()

	if variant != "doubly" && variant != "singly" {
		return nil, "", fmt.Errorf("unknown variant %q", variant)
	}

	values, err := parseValues(raw)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse -values: %w", err)
	}
	return values, variant, nil
}

func parseValues(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []int{}, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func build(variant string, values ...int) *list {
	switch variant {
	case "doubly":
		l := data.NewDoublyLinkedList(values...)
		return &list{
			sequence: l,
			pop:      func() (int, bool) { return dvalue(l.Pop()) },
			shift:    func() (int, bool) { return dvalue(l.Shift()) },
			get:      func(i int) (int, bool) { return dvalue(l.Get(i)) },
			remove:   func(i int) (int, bool) { return dvalue(l.Remove(i)) },
			middle:   func() (int, bool) { return dvalue(l.FindMiddleNode()) },
		}
	case "singly":
		l := data.NewLinkedList(values...)
		return &list{
			sequence: l,
			pop:      func() (int, bool) { return svalue(l.Pop()) },
			shift:    func() (int, bool) { return svalue(l.Shift()) },
			get:      func(i int) (int, bool) { return svalue(l.Get(i)) },
			remove:   func(i int) (int, bool) { return svalue(l.Remove(i)) },
			middle:   func() (int, bool) { return svalue(l.FindMiddleNode()) },
		}
	default:
		return nil
	}
}

func dvalue(n *data.DNode[int], ok bool) (int, bool) {
	if !ok {
		return 0, false
	}
	return n.Value, true
}

func svalue(n *data.Node[int], ok bool) (int, bool) {
	if !ok {
		return 0, false
	}
	return n.Value, true
}

func run(newList func(values ...int) *list, values []int) error {
	l := newList(values...)
	log.Printf("initial: %s (length %d)", l, l.Len())

	l.Reverse()
	log.Printf("reverse: %s", l)

	v, ok := l.pop()
	log.Printf("pop: %d (ok=%v) -> %s", v, ok, l)

	l.Unshift(99)
	log.Printf("unshift 99: %s", l)

	v, ok = l.shift()
	log.Printf("shift: %d (ok=%v) -> %s", v, ok, l)

	v, ok = l.get(2)
	log.Printf("get 2: %d (ok=%v)", v, ok)
	log.Printf("set 42 at 2: %v -> %s", l.Set(42, 2), l)
	log.Printf("insert 77 at 2: %v -> %s", l.Insert(77, 2), l)

	v, ok = l.remove(2)
	log.Printf("remove 2: %d (ok=%v) -> %s", v, ok, l)

	v, ok = l.middle()
	log.Printf("middle: %d (ok=%v)", v, ok)
	log.Printf("has loop: %v", l.HasLoop())
	log.Printf("palindrome: %v", l.IsPalindrome())

	l.Push(2)
	l.Push(2)
	l.Push(3)
	log.Printf("with duplicates: %s", l)
	log.Printf("remove duplicates: %d removed -> %s", l.RemoveDuplicates(), l)

	bin := newList(1, 0, 1, 1)
	dec, err := bin.BinaryToDecimal()
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", bin, err)
	}
	log.Printf("binary %s: %d", bin, dec)

	part := newList(1, 4, 3, 2, 5, 2)
	log.Printf("partition %s around 4:", part)
	part.PartitionList(4)
	log.Printf("  -> %s", part)

	rev := newList(1, 2, 3, 4, 5)
	log.Printf("reverse between 1 and 3 of %s:", rev)
	rev.ReverseBetween(1, 3)
	log.Printf("  -> %s", rev)

	swap := newList(1, 2, 3, 4)
	log.Printf("swap pairs of %s:", swap)
	swap.SwapPairs()
	log.Printf("  -> %s", swap)
	return nil
}
