package intint

import "testing"
import "github.com/stretchr/testify/assert"

func anonMultiMap(t *assert.Assertions) MultiMap {
	m, err := AnonBpTree()
	t.Nil(err)
	return m
}

func TestAddCountHas(x *testing.T) {
	t := assert.New(x)
	m := anonMultiMap(t)
	defer m.Delete()
	t.Nil(m.Add(1, 10))
	t.Nil(m.Add(1, 11))
	t.Nil(m.Add(2, 20))

	count, err := m.Count(1)
	t.Nil(err)
	t.Equal(2, count)

	count, err = m.Count(3)
	t.Nil(err)
	t.Equal(0, count)

	has, err := m.Has(2)
	t.Nil(err)
	t.True(has)

	t.Equal(3, m.Size())
}

func TestKeysAndValues(x *testing.T) {
	t := assert.New(x)
	m := anonMultiMap(t)
	defer m.Delete()
	t.Nil(m.Add(2, 20))
	t.Nil(m.Add(1, 10))
	t.Nil(m.Add(1, 11))

	var keys []int32
	t.Nil(DoKey(m.Keys, func(k int32) error {
		keys = append(keys, k)
		return nil
	}))
	t.Equal([]int32{1, 2}, keys)

	var values []int32
	t.Nil(DoValue(m.Values, func(v int32) error {
		values = append(values, v)
		return nil
	}))
	t.Len(values, 3)
}

func TestFindAndIterate(x *testing.T) {
	t := assert.New(x)
	m := anonMultiMap(t)
	defer m.Delete()
	t.Nil(m.Add(1, 10))
	t.Nil(m.Add(1, 11))
	t.Nil(m.Add(5, 50))

	var found []int32
	t.Nil(m.DoFind(1, func(k, v int32) error {
		t.Equal(int32(1), k)
		found = append(found, v)
		return nil
	}))
	t.Len(found, 2)

	pairs := 0
	t.Nil(Do(m.Iterate, func(k, v int32) error {
		pairs++
		return nil
	}))
	t.Equal(3, pairs)
}
