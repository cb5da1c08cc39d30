/*
Package process drives external renderers as child processes.

It provides the two host-facing pieces of the service: a Locator that decides once,
at startup, which renderer binaries are installed, and an Invoker that runs a single
renderer with the request text on its standard input.

The Invoker never retries and never leaks children: every call spawns exactly one
process, and a timeout or cancelled context kills the whole process group.
*/
package process
