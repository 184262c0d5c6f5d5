// Package scheduler simulates CPU process scheduling. Given a set of
// processes it produces the execution timeline and the waiting, turnaround
// and response metrics under one of four disciplines: first-come
// first-serve, non-preemptive shortest-job-first, round robin with a fixed
// quantum, and non-preemptive priority.
//
// A run never modifies its input. All mutable simulation state lives in a
// per-run slice indexed parallel to the input, so the same process set can
// be scheduled repeatedly, or by several goroutines at once, without one run
// observing another.
//
// All four disciplines share one event loop. They differ only in the ready
// queue the Policy selects and, for round robin, in how long a dispatch may
// run.
package scheduler
