package llm

import "context"

// MockEmbedder permite tests sin llamar a un proveedor real.
type MockEmbedder struct {
	Vectors [][]float32
	Err     error
	Inputs  [][]string
}

func (m *MockEmbedder) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	m.Inputs = append(m.Inputs, inputs)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Vectors != nil {
		return m.Vectors, nil
	}
	vectors := make([][]float32, len(inputs))
	for i := range vectors {
		vectors[i] = []float32{1, 0, 0}
	}
	return vectors, nil
}
