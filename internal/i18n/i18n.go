// Package i18n translates user-facing messages for the en, pt and nl storefronts.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the client sends no supported language.
	DefaultLocale = "en"
	// AcceptLanguageHeader carries the client's language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator resolves message keys per locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator builds a translator over the bundled en, pt and nl catalogs.
func NewTranslator() *Translator {
	return &Translator{messages: getDefaultMessages()}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether a catalog exists for locale.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate looks key up in locale, then in DefaultLocale. An unknown key is
// returned unchanged.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the first supported base language from Accept-Language,
// skipping entries with q=0.
func GetLocale(c *gin.Context) string {
	return negotiate(GetTranslator(), c.GetHeader(AcceptLanguageHeader))
}

// Message translates key for the requesting client.
func Message(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}

func negotiate(t *Translator, header string) string {
	for _, entry := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(entry, ";")
		if q := strings.TrimSpace(params); q == "q=0" || q == "q=0.0" {
			continue
		}
		base, _, _ := strings.Cut(strings.TrimSpace(tag), "-")
		base = strings.ToLower(base)
		if t.Supports(base) {
			return base
		}
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.not_found":               "Not found",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.conflict":                "Conflict",
			"error.timeout":                 "Request timeout",
			"error.idempotency_in_progress": "A request with this idempotency key is still being processed",
			"error.session_not_found":       "Order session not found or expired",
			"error.variant_not_found":       "Product variant not found",
			"error.catalog_unavailable":     "Product catalog is unavailable, please try again later",
			"error.destination_unavailable": "Destination catalog is unavailable, please try again later",
			"error.invalid_argument":        "Invalid argument",
			"error.capacity_exceeded":       "The container does not have enough room for this quantity",
			"error.thermal_mismatch":        "This product cannot be loaded into this container type",
			"error.last_container":          "An order must keep at least one container",
			"error.configuration_error":     "This container type is not available for the selected destination",
			"error.empty_order":             "The order has no products",
			"error.submission_unavailable":  "Order submission is not available",
			"error.submission_in_progress":  "The order is being submitted",
			"error.submission_failed":       "The order could not be submitted, please try again",

			// Success messages
			"success.order_submitted": "Order submitted successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":         "Requisição inválida",
			"error.invalid_request_body":    "Corpo da requisição inválido",
			"error.internal_error":          "Ocorreu um erro inesperado",
			"error.not_found":               "Não encontrado",
			"error.rate_limit_exceeded":     "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                "Conflito",
			"error.timeout":                 "Tempo limite da requisição esgotado",
			"error.idempotency_in_progress": "Uma requisição com esta chave de idempotência ainda está em processamento",
			"error.session_not_found":       "Sessão do pedido não encontrada ou expirada",
			"error.variant_not_found":       "Variante do produto não encontrada",
			"error.catalog_unavailable":     "Catálogo de produtos indisponível, tente novamente mais tarde",
			"error.destination_unavailable": "Catálogo de destinos indisponível, tente novamente mais tarde",
			"error.invalid_argument":        "Argumento inválido",
			"error.capacity_exceeded":       "O contêiner não tem espaço suficiente para esta quantidade",
			"error.thermal_mismatch":        "Este produto não pode ser carregado neste tipo de contêiner",
			"error.last_container":          "Um pedido deve manter pelo menos um contêiner",
			"error.configuration_error":     "Este tipo de contêiner não está disponível para o destino selecionado",
			"error.empty_order":             "O pedido não tem produtos",
			"error.submission_unavailable":  "O envio de pedidos não está disponível",
			"error.submission_in_progress":  "O pedido está sendo enviado",
			"error.submission_failed":       "Não foi possível enviar o pedido, tente novamente",

			// Success messages
			"success.order_submitted": "Pedido enviado com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":         "Ongeldig verzoek",
			"error.invalid_request_body":    "Ongeldige aanvraag body",
			"error.internal_error":          "Er is een onverwachte fout opgetreden",
			"error.not_found":               "Niet gevonden",
			"error.rate_limit_exceeded":     "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                "Conflict",
			"error.timeout":                 "Time-out van verzoek",
			"error.idempotency_in_progress": "Een verzoek met deze idempotentiesleutel wordt nog verwerkt",
			"error.session_not_found":       "Bestelsessie niet gevonden of verlopen",
			"error.variant_not_found":       "Productvariant niet gevonden",
			"error.catalog_unavailable":     "Productcatalogus is niet beschikbaar, probeer het later opnieuw",
			"error.destination_unavailable": "Bestemmingscatalogus is niet beschikbaar, probeer het later opnieuw",
			"error.invalid_argument":        "Ongeldig argument",
			"error.capacity_exceeded":       "De container heeft niet genoeg ruimte voor deze hoeveelheid",
			"error.thermal_mismatch":        "Dit product kan niet in dit type container worden geladen",
			"error.last_container":          "Een bestelling moet minstens één container behouden",
			"error.configuration_error":     "Dit containertype is niet beschikbaar voor de gekozen bestemming",
			"error.empty_order":             "De bestelling bevat geen producten",
			"error.submission_unavailable":  "Bestellingen indienen is niet beschikbaar",
			"error.submission_in_progress":  "De bestelling wordt ingediend",
			"error.submission_failed":       "De bestelling kon niet worden ingediend, probeer het opnieuw",

			// Success messages
			"success.order_submitted": "Bestelling succesvol ingediend",
		},
	}
}
