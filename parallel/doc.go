/*
Package parallel turns "apply f to every element" into a burst of independent pool tasks.

Two shapes are offered and they differ on purpose:

  - [ForEachOn] borrows a caller-owned [pool.Pool]. It returns as soon as every element
    has been submitted and does not wait for the tasks. Completion is only guaranteed
    after the caller drains the pool with [pool.Pool.Wait] or [pool.Pool.Close].
  - [ForEach] owns an ephemeral pool sized to [pool.HardwareConcurrency]. Closing that
    pool is the drain point, so ForEach returns only after every task has run.

In both cases tasks are queued in iteration order, but workers race for them and the
execution order is unspecified. Side effects of f on different elements must be
independent or synchronized by the caller; writing to a distinct index of a pre-sized
slice per element is the usual pattern, and [Map] packages it.
*/
package parallel
