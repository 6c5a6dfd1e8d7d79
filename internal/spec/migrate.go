package spec

import "strings"

// legacyKeys maps historical wire keys to their canonical name, per parent
// path. A canonical key present in the document always wins over its alias.
var legacyKeys = map[string]map[string]string{
	"sourcecode":       {"depencencycmd": "dependencycmd"},
	"build.sourcecode": {"depencencycmd": "dependencycmd"},
}

// migrate rewrites legacy keys in place. doc is the generic form of the
// document as produced by decoding JSON into map[string]interface{}.
func migrate(doc map[string]interface{}) {
	for parent, aliases := range legacyKeys {
		node := lookup(doc, parent)
		if node == nil {
			continue
		}
		for old, canonical := range aliases {
			v, ok := node[old]
			if !ok {
				continue
			}
			delete(node, old)
			if _, exists := node[canonical]; !exists {
				node[canonical] = v
			}
		}
	}
}

func lookup(doc map[string]interface{}, path string) map[string]interface{} {
	node := doc
	for _, key := range strings.Split(path, ".") {
		next, ok := node[key].(map[string]interface{})
		if !ok {
			return nil
		}
		node = next
	}
	return node
}
