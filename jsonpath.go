// FILE: lixenwraith/confighelper/jsonpath.go
package confighelper

import (
	"fmt"
	"strconv"
)

// JSONConnectionStringsKey is the top-level object SetJSONConnectionString writes into.
const JSONConnectionStringsKey = "ConnectionStrings"

// loadJSON reads and parses an existing JSON file.
func loadJSON(filePath string) (*Value, error) {
	data, err := readExisting(filePath)
	if err != nil {
		return nil, err
	}

	root, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("JSON file '%s': %w", filePath, err)
	}
	return root, nil
}

// saveJSON writes root back to filePath with two-space indentation.
func saveJSON(filePath string, root *Value) error {
	data, err := root.MarshalIndent()
	if err != nil {
		return fmt.Errorf("failed to encode JSON file '%s': %w", filePath, err)
	}
	return atomicWriteFile(filePath, data)
}

// SetJSONConnectionString sets ConnectionStrings[key] = value in the JSON file at filePath.
// The ConnectionStrings object is created when the document has none.
func (s *Store) SetJSONConnectionString(filePath, key, value string) error {
	if err := requireKey(key); err != nil {
		return err
	}

	root, err := loadJSON(filePath)
	if err != nil {
		return err
	}

	if root.Kind() != KindObject {
		return fmt.Errorf("%w: root of '%s' is %s", ErrNotContainer, filePath, root.Kind())
	}

	section, err := descend(root, JSONConnectionStringsKey, true)
	if err != nil {
		return fmt.Errorf("failed to set connection string %q in '%s': %w", key, filePath, err)
	}
	if err := assign(section, key, String(value)); err != nil {
		return fmt.Errorf("failed to set connection string %q in '%s': %w", key, filePath, err)
	}

	if err := saveJSON(filePath, root); err != nil {
		return err
	}

	s.logger.Debug().Str("path", filePath).Str("key", key).Msg("set JSON connection string")
	return nil
}

// SetJSONValue assigns value at keyPath in the JSON file at filePath.
//
// keyPath is split on ':' into at most MaxKeyDepth segments. Missing objects
// along the path are created; descending through a scalar fails with
// ErrNotContainer. Array elements are addressed by decimal index and must exist.
// The value is converted with ValueOf: integers and booleans stay native,
// everything else is written as a string.
func (s *Store) SetJSONValue(filePath, keyPath string, value any) error {
	if err := requireFile(filePath); err != nil {
		return err
	}

	segments, err := SplitKeyPath(keyPath)
	if err != nil {
		return err
	}

	root, err := loadJSON(filePath)
	if err != nil {
		return err
	}

	parent := root
	for _, segment := range segments[:len(segments)-1] {
		parent, err = descend(parent, segment, true)
		if err != nil {
			return fmt.Errorf("failed to set %q in '%s': %w", keyPath, filePath, err)
		}
	}

	if err := assign(parent, segments[len(segments)-1], ValueOf(value)); err != nil {
		return fmt.Errorf("failed to set %q in '%s': %w", keyPath, filePath, err)
	}

	if err := saveJSON(filePath, root); err != nil {
		return err
	}

	s.logger.Debug().Str("path", filePath).Str("key", keyPath).Msg("set JSON value")
	return nil
}

// GetJSONValue returns the node at keyPath in the JSON file at filePath.
// A missing node is ErrNotFound; nothing is created.
func (s *Store) GetJSONValue(filePath, keyPath string) (*Value, error) {
	segments, err := SplitKeyPath(keyPath)
	if err != nil {
		return nil, err
	}

	root, err := loadJSON(filePath)
	if err != nil {
		return nil, err
	}

	node := root
	for _, segment := range segments {
		node, err = descend(node, segment, false)
		if err != nil {
			return nil, fmt.Errorf("failed to get %q in '%s': %w", keyPath, filePath, err)
		}
	}
	return node, nil
}

// descend returns the child of node addressed by segment.
// With create set, a missing or null object member becomes an empty object.
func descend(node *Value, segment string, create bool) (*Value, error) {
	switch node.Kind() {
	case KindObject:
		child, ok := node.Get(segment)
		if ok && (child.Kind() != KindNull || !create) {
			return child, nil
		}
		if !create {
			return nil, fmt.Errorf("%w: key %q", ErrNotFound, segment)
		}
		child = Object()
		node.Set(segment, child)
		return child, nil

	case KindArray:
		i, err := arrayIndex(segment)
		if err != nil {
			return nil, err
		}
		child, ok := node.Index(i)
		if !ok {
			return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrNotFound, i, node.Len())
		}
		return child, nil

	default:
		return nil, fmt.Errorf("%w: cannot look up %q in %s", ErrNotContainer, segment, node.Kind())
	}
}

// assign stores child under segment of node.
func assign(node *Value, segment string, child *Value) error {
	switch node.Kind() {
	case KindObject:
		node.Set(segment, child)
		return nil

	case KindArray:
		i, err := arrayIndex(segment)
		if err != nil {
			return err
		}
		return node.SetIndex(i, child)

	default:
		return fmt.Errorf("%w: cannot set %q in %s", ErrNotContainer, segment, node.Kind())
	}
}

func arrayIndex(segment string) (int, error) {
	i, err := strconv.Atoi(segment)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: array index %q is not a non-negative integer", ErrInvalidArgument, segment)
	}
	return i, nil
}
