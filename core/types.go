package core

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for derived artifacts such as stored vectors.
// It is generated using content-based hashing so identical content maps
// to identical IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using
// BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// String returns the ID formatted as fixed-width hex.
func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// KnowledgeType categorizes an ingested document. The classifier stage
// picks exactly one of these; anything else normalizes to general.
type KnowledgeType string

const (
	KnowledgeFAQ             KnowledgeType = "faq"
	KnowledgePolicy          KnowledgeType = "policy"
	KnowledgeTroubleshooting KnowledgeType = "troubleshooting"
	KnowledgeSales           KnowledgeType = "sales"
	KnowledgeGeneral         KnowledgeType = "general"
)

// ParseKnowledgeType normalizes a raw classifier label to a valid
// KnowledgeType. Unknown labels map to KnowledgeGeneral.
func ParseKnowledgeType(label string) KnowledgeType {
	switch KnowledgeType(strings.ToLower(strings.TrimSpace(label))) {
	case KnowledgeFAQ:
		return KnowledgeFAQ
	case KnowledgePolicy:
		return KnowledgePolicy
	case KnowledgeTroubleshooting:
		return KnowledgeTroubleshooting
	case KnowledgeSales:
		return KnowledgeSales
	case KnowledgeGeneral:
		return KnowledgeGeneral
	default:
		return KnowledgeGeneral
	}
}

// Intent is the classified purpose of a customer message.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentQuestion  Intent = "question"
	IntentComplaint Intent = "complaint"
	IntentRequest   Intent = "request"
	IntentFeedback  Intent = "feedback"
	IntentBilling   Intent = "billing"
	IntentTechnical Intent = "technical"
	IntentSales     Intent = "sales"
	IntentOther     Intent = "other"
)

// Department is the support team a conversation is routed to.
type Department string

const (
	DepartmentBilling         Department = "billing"
	DepartmentTechnical       Department = "technical_support"
	DepartmentSales           Department = "sales"
	DepartmentCustomerService Department = "customer_service"
	DepartmentGeneral         Department = "general_support"
)

// RouteIntent maps an intent to the department that handles it.
// Intents without a dedicated team land in general support.
func RouteIntent(intent Intent) Department {
	switch intent {
	case IntentBilling:
		return DepartmentBilling
	case IntentTechnical:
		return DepartmentTechnical
	case IntentSales:
		return DepartmentSales
	case IntentComplaint, IntentFeedback:
		return DepartmentCustomerService
	default:
		return DepartmentGeneral
	}
}

// Turn is a single message in a conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Section is a titled slice of a parsed document.
// Type is one of header, paragraph, list or table.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// Chunk is a contiguous, ordered slice of document text prepared for
// embedding and storage. Chunks are produced only by the ingestion
// storage stage and are immutable once created.
type Chunk struct {
	Content       string        `json:"content"`
	Index         int           `json:"chunk_index"`
	TotalChunks   int           `json:"total_chunks"`
	DocumentID    string        `json:"document_id"`
	VectorID      string        `json:"vector_id"`
	KnowledgeType KnowledgeType `json:"type"`
}

// RetrievedContext is a knowledge snippet returned by one retrieval call.
// It is consumed within the same pipeline run only.
type RetrievedContext struct {
	Content    string
	DocumentID string
	Metadata   map[string]string
	Relevance  float64
}

// Source is a citation derived from retrieved context.
type Source struct {
	DocumentID string  `json:"document_id"`
	Relevance  float64 `json:"relevance"`
}
