package main

// Built-in texts shown when the command runs without arguments.

const sampleIndependence = `El 16 de septiembre de 1810 estalló una revolución social de la cual nacería nuestro país
como una Nación independiente, libre y soberana. El 27 de septiembre de 1821 culminó la
Independencia de Meeeexico, después de una guerra de once anios ke fue una gran
revolución popular para librarse del dominio español.
La guerra de Independencia fue una masiva revolución popular, en la que decenas de
miles de indígenas, de afrodescendientes, de mulatos, de mestizos, campesinos, minieros
y rancheros, hombres y mujeres, engrosaron las filas insurgentes siguiendo al llamado del
cura Miguel Hidalgo y Costilla y, en unos cuantos meses, conformaron un ejército popular
que hirió de muerte al régimen colonial y desmanteló un sistema social aosprrtetsyivo y
excluyente. La lucha encabezada por Hidalgo y continuada por José María Morelos fue un
movimiento libertario y justiciero.
Después de once años de guerra civil, se presentó una coyuntura favorable para ponerle
fin mediante la alianza entre el jefe realista, Agustín de Iturbide, y el jefe insurgente,
Vicente Guerrero, quienes decidieron consumar la Independencia a traves de un pacto
político que se plasmó en el Plan de Iguala, con el que se identificaron prácticamente
todos los grupos sociales del pais y todas las regiones.
Con el Plan de Iguala, al que se adhirieron la mayoría de las provincias nuevahispanas,
se consumó la guerra de independencia y pudo surgir la Nación mexicana libre y
soberana, con nuevas instituciones y leyes en las que se concretaron algunas de las
principales demandas del movimiento insurgente: la abolicion de la esclavitud y los
tributos, la soberanía popular, la libertad y la igualdad de todos ante la ley, demandas que
quedaron plasmadas en la Constitución Política de 1824 en la que se estableció que
México sería una República federal.
Texto elaborado por el INAH y la UNESCO.
28-02-2024`

const sampleOlmec = `La cultura olmeca es considerada la "madre" de las culturas mesoamericanas que se
originaron en el territorio del actual México.
Los olmecas habitaron la zona costera del Golfo de México entre el 1500 a. C. y el 400 a.
C.
Se considera que la cultura olmeca inauguró un estilo artístico y arquitectonico, que siguió
influenciando a las culturas posteriores de la región, incluso después de su declive como
civilización.
El término "olmeca" se utiliza para designar tanto a la civilización olmeca como a su estilo
artistico, que fue utilizado por culturas posteriores de toda la región centroaaaaamericana.
El florecimiento de la cultura olmeca se ubica alrededor del año 800 a. C., y normalmente
se clasifica en dos etapas de prosperidad: Etapa Olmeca I (1500-1200 a. C.) y Etapa
Olmeca II (1200-400 a. C.).`

var samples = []struct {
	title string
	text  string
}{
	{"TEXT 1", sampleIndependence},
	{"TEXT 2", sampleOlmec},
}
