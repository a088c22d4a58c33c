// Package gpu specifies the device/buffer/queue abstraction the engine
// uploads CSR graphs through, and the two compute kernels — level-
// synchronous BFS and power-iteration PageRank — dispatched over it.
//
// No wgpu, CUDA, Vulkan, or Metal binding appears anywhere in the retrieval
// pack, so this package ships one implementation of its own interfaces: a
// pure-Go reference backend that preserves the dispatch *contract*
// (one-thread-per-node fan-out, level/iteration barriers, device-to-host
// map-read) using a bounded worker pool instead of hardware lockstep. A
// real device binding could implement Device/Buffer/Queue without any
// caller in this repo changing.
package gpu
