// Package worker 提供簡易的背景工作池
// 處理請求路徑外的零星工作，例如快取失效
package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

func (p *pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job != nil {
			job()
		}
	}
}

// Submit 將工作排入池中，Stop 之後不可再呼叫
func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop 關閉工作佇列並等待所有工作結束
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
