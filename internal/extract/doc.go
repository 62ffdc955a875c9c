// Package extract recovers usable output from language model responses.
//
// Text locates the generated text in a response whose concrete type depends
// on the client and its version, probing a fixed list of shapes in priority
// order. JSONObject then recovers the first JSON object from that text,
// tolerating markdown code fences and surrounding prose.
package extract
