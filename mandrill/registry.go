package mandrill

// ErrorKind is one of the named business error conditions the API reports.
type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindValidationError
	KindInvalidKey
	KindPaymentRequired
	KindUnknownSubaccount
	KindUnknownTemplate
	KindServiceUnavailable
	KindUnknownMessage
	KindInvalidTagName
	KindInvalidReject
	KindUnknownSender
	KindUnknownURL
	KindUnknownTrackingDomain
	KindInvalidTemplate
	KindUnknownWebhook
	KindUnknownInboundDomain
	KindUnknownInboundRoute
	KindUnknownExport
	KindIPProvisionLimit
	KindUnknownPool
	KindNoSendingHistory
	KindPoorReputation
	KindUnknownIP
	KindInvalidEmptyDefaultPool
	KindInvalidDeleteDefaultPool
	KindInvalidDeleteNonEmptyPool
	KindInvalidCustomDNS
	KindInvalidCustomDNSPending
	KindMetadataFieldLimit
	KindUnknownMetadataField
)

type kindInfo struct {
	name     string
	sentinel error
}

var kinds = [...]kindInfo{
	KindGeneric:                   {"GenericError", ErrGeneric},
	KindValidationError:           {"ValidationError", ErrValidation},
	KindInvalidKey:                {"InvalidKey", ErrInvalidKey},
	KindPaymentRequired:           {"PaymentRequired", ErrPaymentRequired},
	KindUnknownSubaccount:         {"UnknownSubaccount", ErrUnknownSubaccount},
	KindUnknownTemplate:           {"UnknownTemplate", ErrUnknownTemplate},
	KindServiceUnavailable:        {"ServiceUnavailable", ErrServiceUnavailable},
	KindUnknownMessage:            {"UnknownMessage", ErrUnknownMessage},
	KindInvalidTagName:            {"InvalidTagName", ErrInvalidTagName},
	KindInvalidReject:             {"InvalidReject", ErrInvalidReject},
	KindUnknownSender:             {"UnknownSender", ErrUnknownSender},
	KindUnknownURL:                {"UnknownUrl", ErrUnknownURL},
	KindUnknownTrackingDomain:     {"UnknownTrackingDomain", ErrUnknownTrackingDomain},
	KindInvalidTemplate:           {"InvalidTemplate", ErrInvalidTemplate},
	KindUnknownWebhook:            {"UnknownWebhook", ErrUnknownWebhook},
	KindUnknownInboundDomain:      {"UnknownInboundDomain", ErrUnknownInboundDomain},
	KindUnknownInboundRoute:       {"UnknownInboundRoute", ErrUnknownInboundRoute},
	KindUnknownExport:             {"UnknownExport", ErrUnknownExport},
	KindIPProvisionLimit:          {"IPProvisionLimit", ErrIPProvisionLimit},
	KindUnknownPool:               {"UnknownPool", ErrUnknownPool},
	KindNoSendingHistory:          {"NoSendingHistory", ErrNoSendingHistory},
	KindPoorReputation:            {"PoorReputation", ErrPoorReputation},
	KindUnknownIP:                 {"UnknownIP", ErrUnknownIP},
	KindInvalidEmptyDefaultPool:   {"InvalidEmptyDefaultPool", ErrInvalidEmptyDefaultPool},
	KindInvalidDeleteDefaultPool:  {"InvalidDeleteDefaultPool", ErrInvalidDeleteDefaultPool},
	KindInvalidDeleteNonEmptyPool: {"InvalidDeleteNonEmptyPool", ErrInvalidDeleteNonEmptyPool},
	KindInvalidCustomDNS:          {"InvalidCustomDNS", ErrInvalidCustomDNS},
	KindInvalidCustomDNSPending:   {"InvalidCustomDNSPending", ErrInvalidCustomDNSPending},
	KindMetadataFieldLimit:        {"MetadataFieldLimit", ErrMetadataFieldLimit},
	KindUnknownMetadataField:      {"UnknownMetadataField", ErrUnknownMetadataField},
}

// errorRegistry maps the server-supplied error name onto its kind. Read-only after init.
var errorRegistry = map[string]ErrorKind{
	"ValidationError":            KindValidationError,
	"Invalid_Key":                KindInvalidKey,
	"PaymentRequired":            KindPaymentRequired,
	"Unknown_Subaccount":         KindUnknownSubaccount,
	"Unknown_Template":           KindUnknownTemplate,
	"ServiceUnavailable":         KindServiceUnavailable,
	"Unknown_Message":            KindUnknownMessage,
	"Invalid_Tag_Name":           KindInvalidTagName,
	"Invalid_Reject":             KindInvalidReject,
	"Unknown_Sender":             KindUnknownSender,
	"Unknown_Url":                KindUnknownURL,
	"Unknown_TrackingDomain":     KindUnknownTrackingDomain,
	"Invalid_Template":           KindInvalidTemplate,
	"Unknown_Webhook":            KindUnknownWebhook,
	"Unknown_InboundDomain":      KindUnknownInboundDomain,
	"Unknown_InboundRoute":       KindUnknownInboundRoute,
	"Unknown_Export":             KindUnknownExport,
	"IP_ProvisionLimit":          KindIPProvisionLimit,
	"Unknown_Pool":               KindUnknownPool,
	"NoSendingHistory":           KindNoSendingHistory,
	"PoorReputation":             KindPoorReputation,
	"Unknown_IP":                 KindUnknownIP,
	"Invalid_EmptyDefaultPool":   KindInvalidEmptyDefaultPool,
	"Invalid_DeleteDefaultPool":  KindInvalidDeleteDefaultPool,
	"Invalid_DeleteNonEmptyPool": KindInvalidDeleteNonEmptyPool,
	"Invalid_CustomDNS":          KindInvalidCustomDNS,
	"Invalid_CustomDNSPending":   KindInvalidCustomDNSPending,
	"Metadata_FieldLimit":        KindMetadataFieldLimit,
	"Unknown_MetadataField":      KindUnknownMetadataField,
}

// LookupErrorKind resolves a server error name. Unknown names resolve to KindGeneric.
func LookupErrorKind(name string) ErrorKind {
	if kind, ok := errorRegistry[name]; ok {
		return kind
	}
	return KindGeneric
}

// registeredErrorNames lists every server error name in the registry.
func registeredErrorNames() []string {
	names := make([]string, 0, len(errorRegistry))
	for name := range errorRegistry {
		names = append(names, name)
	}
	return names
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return kinds[KindGeneric].name
	}
	return kinds[k].name
}

// Sentinel returns the error value that errors.Is matches for this kind.
func (k ErrorKind) Sentinel() error {
	if k < 0 || int(k) >= len(kinds) {
		return ErrGeneric
	}
	return kinds[k].sentinel
}
