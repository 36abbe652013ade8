package docstore

import "strings"

// Key prefixes for the registry's keyspace.
const (
	documentPrefix    = "docrec"
	documentOrgPrefix = "docorg"
)

// makeDocumentKey generates the key for a document record by id.
func makeDocumentKey(id string) []byte {
	return []byte(documentPrefix + ":" + id)
}

// makeOrgIndexKey generates the organization index entry for a document.
// Format: prefix:organizationID:documentID
func makeOrgIndexKey(organizationID, documentID string) []byte {
	return []byte(documentOrgPrefix + ":" + organizationID + ":" + documentID)
}

// makePartialOrgIndexKey generates the iteration prefix for one
// organization's index entries.
func makePartialOrgIndexKey(organizationID string) []byte {
	return []byte(documentOrgPrefix + ":" + organizationID + ":")
}

// documentIDFromOrgIndexKey recovers the document id from an index key.
func documentIDFromOrgIndexKey(key []byte, organizationID string) string {
	return strings.TrimPrefix(string(key), documentOrgPrefix+":"+organizationID+":")
}
