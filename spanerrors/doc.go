/*
Serialisation error model for the spanclient family.

Every shape or type mismatch detected while serialising request data or
deserialising response content is reported through a single error kind,
SerialisationError. Each failure condition has one fixed message, declared once in
this package so that the exact text stays consistent between services and clients
that assert on it.

Errors raised by collaborators — the HTTP client itself, or the JSON parser on
malformed bytes — are never wrapped into a SerialisationError. Their taxonomy
belongs to the collaborator.
*/
package spanerrors
