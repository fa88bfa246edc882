// Media-type-specific serialise / deserialise strategies for message body content.
/*
Each supported content type gets one stateless Codec value implementing a common
contract: converting payload data to its wire form for outgoing requests, and
converting raw response bytes back into typed records (or the codec's default
container) for incoming responses.

Codecs are selected through a static registry keyed by normalized content type.
Supporting a new media type means registering one more Codec value, not declaring
a new decorator class, so request and response decoration pick up new types for
free.

Payload shape (scalar vs record vs list) is inspected once per call and checked
against the caller-declared model. A shape mismatch is always an error with a
fixed message — never a silent coercion.
*/
package encoding
