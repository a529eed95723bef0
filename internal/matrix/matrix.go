package matrix

// Size is the row and column count of every Matrix.
const Size = 4

// Matrix is a Size x Size grid of signed integers stored row-major.
type Matrix [Size][Size]int32

// Fixture returns the constant operand: row r holds r+1 in every column.
func Fixture() Matrix {
	return Matrix{
		{1, 1, 1, 1},
		{2, 2, 2, 2},
		{3, 3, 3, 3},
		{4, 4, 4, 4},
	}
}

// Identity returns the multiplicative identity.
func Identity() Matrix {
	var m Matrix
	for i := 0; i < Size; i++ {
		m[i][i] = 1
	}
	return m
}

// Dot returns the dot product of row i of a and column j of b.
func Dot(a Matrix, i int, b Matrix, j int) int32 {
	var sum int32
	for k := 0; k < Size; k++ {
		sum += a[i][k] * b[k][j]
	}
	return sum
}

// Multiply returns a x b. Rows of a are taken against columns of b.
func Multiply(a, b Matrix) Matrix {
	var c Matrix
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			c[i][j] = Dot(a, i, b, j)
		}
	}
	return c
}

func (m Matrix) Row(i int) [Size]int32 {
	return m[i]
}

func (m Matrix) Equal(other Matrix) bool {
	return m == other
}
