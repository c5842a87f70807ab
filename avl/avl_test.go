// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

// build a list of four digit keys, duplicates are likely when n is
// large
func makeList(seed int64, n int) []stringItem {
	r := rand.New(rand.NewSource(seed))
	list := make([]stringItem, n)
	for i := range list {
		list[i] = stringItem{fmt.Sprintf("%04d", r.Intn(10000))}
	}
	return list
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := makeList(1720, 40)
	for i := 0; i < 40; i += 1 {
		addList = append(addList, addList[i%3])
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func TestListLong(t *testing.T) {
	addList := makeList(8133, 240)
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// ascending and descending input exercise only single rotations on
// insert, and every deletion case on the way down
func TestListSorted(t *testing.T) {
	addList := make([]stringItem, 100)
	for i := range addList {
		addList[i] = stringItem{fmt.Sprintf("%03d", i)}
	}
	doList(t, addList)

	for i, j := 0, len(addList)-1; i < j; i, j = i+1, j-1 {
		addList[i], addList[j] = addList[j], addList[i]
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// insert the whole list, delete a prefix of it checking the tree
// after every step, then delete the remainder
func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})

		tree := avl.New()
		for _, key := range addList {
			tree.Insert(key, "data:"+key.String())
		}

		if err := tree.Validate(); nil != err {
			t.Errorf("add: inconsistent tree: %s", err)
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent tree")
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv := tree.Delete(key)
			ev := "data:" + key.String()
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
			if err := tree.Validate(); nil != err {
				depth := tree.Print(true)
				t.Logf("depth: %d", depth)
				t.Fatalf("delete: %q  inconsistent tree: %s", key, err)
			}
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv := tree.Delete(key)
			ev := "data:" + key.String()
			if dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		if !tree.IsEmpty() {
			t.Errorf("remainder: remaining nodes")
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// sorted unique keys of a list
func uniqueKeys(addList []stringItem) []string {
	unique := make(map[string]struct{})
	for _, key := range addList {
		unique[key.String()] = struct{}{}
	}
	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)
	return expected
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []stringItem) {

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}
	expected := uniqueKeys(addList)

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// delete while iterating: the current node is removed after
	// moving on, so later nodes must still be reachable
	p = tree.First()
	for nil != p {
		next := p.Next()
		tree.Delete(p.Key())
		p = next
	}

	if !tree.IsEmpty() {
		t.Errorf("remainder: remaining nodes")
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// use indexing to fetch each item
func doGet(t *testing.T, addList []stringItem) {

	tree := avl.New()
	for _, key := range addList {
		tree.Insert(key, "data:"+key.String())
	}
	expected := uniqueKeys(addList)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	for index, key := range expected {
		node := tree.Get(index)
		if nil == node {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		if 0 != node.Key().Compare(stringItem{key}) {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Key())
		}
		node1, index1 := tree.Search(stringItem{key})
		if nil == node1 {
			t.Fatalf("[%d]: search: %q returned nil", index, key)
		}
		if index != index1 {
			t.Errorf("[%d]: search: %q index: %d expected: %d", index, key, index1, index)
		}
	}

	if nil != tree.Get(-1) || nil != tree.Get(len(expected)) {
		t.Fatal("out of range index returned a node")
	}

	if !tree.CheckCounts() {
		t.Fatal("tree CheckCounts failed")
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			tree.Delete(stringItem{key})
		}
	}

	// check odd elements are all present
odd_scan:
	for index, key := range expected {
		if 0 == index%2 {
			continue odd_scan
		}
		index >>= 1 // 1,3,5, … → 0,1,2, …
		node := tree.Get(index)
		if nil == node {
			t.Fatalf("[%d] key: %q not in tree (nil result)", index, key)
		}
		if 0 != node.Key().Compare(stringItem{key}) {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, node.Key())
		}
	}
	if !tree.CheckCounts() {
		t.Fatal("tree CheckCounts failed")
	}
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 1, 2200, 2000)
	randomTree(t, 2, 3400, 2760)
	randomTree(t, 3, 5467, 1234)

	for i := int64(0); i < 5; i += 1 {
		randomTree(t, 10+i, 2100, 2000)
	}
}

func randomTree(t *testing.T, seed int64, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New()
	keys := makeList(seed, total)
	d := keys[:toDelete]

	for _, key := range keys {
		tree.Insert(key, "data:"+key.String())
	}

	if err := tree.Validate(); nil != err {
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree: %s", err)
	}

	for _, key := range d {
		tree.Delete(key)
		if err := tree.Validate(); nil != err {
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatalf("delete: %q  inconsistent tree: %s", key, err)
		}
	}

	// add back the test value
	testKey := stringItem{"500"}
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey, testValue)

	if err := tree.Validate(); nil != err {
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree: %s", err)
	}

	doTraverse(t, d)
	doGet(t, d)

	// check that test value is searchable
	tv, _ := tree.Search(testKey)
	if nil == tv {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testKey != tv.Key() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Key(), testKey)
	}
	if testValue != tv.Value() {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.Value(), testValue)
	}

	// check iterators
	n := tv.Next()
	p := tv.Prev()
	if nil == n {
		t.Fatal("could not find next")
	}
	if nil == p {
		t.Fatal("could not find prev")
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	value := tree.Delete(testKey)
	if value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	tv, index := tree.Search(testKey)
	if nil != tv {
		t.Fatalf("test key not deleted and contains: %q", tv.Value())
	}
	if -1 != index {
		t.Fatalf("missing key index: %d  expected: -1", index)
	}
}

// check that inserted nodes can be overwritten
// and that nodes keep constant address when tree is re-balanced
func TestOverwriteAndNodeStability(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 10; i += 1 {
		key := stringItem{fmt.Sprintf("%02d", i)}
		tree.Insert(key, "data:"+key.String())
	}

	// overwrite a key
	oKey := stringItem{"05"}
	oIndex := 4 // zero based index
	const newData = "new content for 05"
	if tree.Insert(oKey, newData) {
		t.Fatal("overwrite reported a new node")
	}
	if 10 != tree.Count() {
		t.Fatalf("count after overwrite: %d  expected: 10", tree.Count())
	}

	if err := tree.Validate(); nil != err {
		t.Errorf("add: inconsistent tree: %s", err)
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree: %s", err)
	}

	// check overwrite
	node1, index1 := tree.Search(oKey)
	if oIndex != index1 {
		t.Errorf("index1: %d  expected %d", index1, oIndex)
	}
	if newData != node1.Value() {
		t.Fatalf("node data actual: %q  expected: %q", node1.Value(), newData)
	}

	// delete nodes so the oKey node moves, 04 has two children and
	// swaps position with its predecessor
	for _, k := range []string{"06", "04", "08"} {
		tree.Delete(stringItem{k})

		node2, _ := tree.Search(oKey)
		if node1 != node2 {
			t.Fatalf("after delete: %s  node moved from: %p → %p", k, node1, node2)
		}
		if err := tree.Validate(); nil != err {
			t.Errorf("delete: inconsistent tree: %s", err)
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatalf("inconsistent tree: %s", err)
		}
	}
	_, index2 := tree.Search(oKey)
	if oIndex-1 != index2 {
		t.Errorf("index2: %d  expected %d", index2, oIndex-1)
	}
}

func TestGetDepthInTree(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 7; i += 1 {
		key := stringItem{fmt.Sprintf("%02d", i)}
		tree.Insert(key, "data:"+key.String())
	}

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.Root().Depth(); d != 0 {
		t.Fatalf("incorrect root depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 7; i += 1 {
		key := stringItem{fmt.Sprintf("%02d", i)}
		tree.Insert(key, "data:"+key.String())
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}

	if len(tree.Root().GetChildrenByDepth(3)) != 0 {
		t.Fatalf("incorrect children number in depth 3")
	}
}
